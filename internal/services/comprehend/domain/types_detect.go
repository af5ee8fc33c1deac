package domain

// Real-time analysis shapes. Every optional member is a pointer or a nil-able slice;
// nil means absent on the wire

// DetectDominantLanguageInput asks for the languages of one document
type DetectDominantLanguageInput struct {
	Text *string `json:"Text,omitzero" validate:"required" constraint:"required,min=1,maxbytes=100000"`
}

// DetectDominantLanguageOutput lists candidate languages, best first
type DetectDominantLanguageOutput struct {
	Languages []DominantLanguage `json:"Languages,omitzero" validate:"omitempty,dive"`
}

// DominantLanguage is one language candidate. LanguageCode is an RFC 5646 tag, not a closed vocabulary
type DominantLanguage struct {
	LanguageCode *string  `json:"LanguageCode,omitzero"`
	Score        *float32 `json:"Score,omitzero"`
}

// DocumentReaderConfig controls text extraction from semi-structured documents
type DocumentReaderConfig struct {
	DocumentReadAction *DocumentReadAction        `json:"DocumentReadAction,omitzero" validate:"required,enum"`
	DocumentReadMode   *DocumentReadMode          `json:"DocumentReadMode,omitzero" validate:"omitempty,enum"`
	FeatureTypes       []DocumentReadFeatureTypes `json:"FeatureTypes,omitzero" validate:"omitempty,dive,enum" constraint:"omitempty,min=1,max=2"`
}

// DetectEntitiesInput takes either Text or Bytes
type DetectEntitiesInput struct {
	Text                 *string               `json:"Text,omitzero" constraint:"omitempty,min=1,maxbytes=100000"`
	LanguageCode         *LanguageCode         `json:"LanguageCode,omitzero" validate:"omitempty,enum"`
	EndpointArn          *string               `json:"EndpointArn,omitzero" constraint:"omitempty,arn=entity-recognizer-endpoint"`
	Bytes                []byte                `json:"Bytes,omitzero" constraint:"omitempty,min=1"`
	DocumentReaderConfig *DocumentReaderConfig `json:"DocumentReaderConfig,omitzero"`
}

// DetectEntitiesOutput lists entities in document order
type DetectEntitiesOutput struct {
	Entities         []Entity               `json:"Entities,omitzero" validate:"omitempty,dive"`
	DocumentMetadata *DocumentMetadata      `json:"DocumentMetadata,omitzero"`
	DocumentType     []DocumentTypeListItem `json:"DocumentType,omitzero" validate:"omitempty,dive"`
	Errors           []ErrorsListItem       `json:"Errors,omitzero" validate:"omitempty,dive"`
}

// Entity is a detected named entity. Offsets count characters, not bytes
type Entity struct {
	Score       *float32    `json:"Score,omitzero"`
	Type        *EntityType `json:"Type,omitzero" validate:"omitempty,enum"`
	Text        *string     `json:"Text,omitzero"`
	BeginOffset *int32      `json:"BeginOffset,omitzero"`
	EndOffset   *int32      `json:"EndOffset,omitzero"`
}

// DocumentMetadata describes an analyzed semi-structured document
type DocumentMetadata struct {
	Pages               *int32                        `json:"Pages,omitzero"`
	ExtractedCharacters []ExtractedCharactersListItem `json:"ExtractedCharacters,omitzero" validate:"omitempty,dive"`
}

// ExtractedCharactersListItem is the character count of one page
type ExtractedCharactersListItem struct {
	Page  *int32 `json:"Page,omitzero"`
	Count *int32 `json:"Count,omitzero"`
}

// DocumentTypeListItem is the detected format of one page
type DocumentTypeListItem struct {
	Page *int32        `json:"Page,omitzero"`
	Type *DocumentType `json:"Type,omitzero" validate:"omitempty,enum"`
}

// ErrorsListItem is a page-level extraction failure
type ErrorsListItem struct {
	Page         *int32              `json:"Page,omitzero"`
	ErrorCode    *PageBasedErrorCode `json:"ErrorCode,omitzero" validate:"omitempty,enum"`
	ErrorMessage *string             `json:"ErrorMessage,omitzero"`
}

// WarningsListItem is a page-level model mismatch warning
type WarningsListItem struct {
	Page        *int32            `json:"Page,omitzero"`
	WarnCode    *PageBasedWarning `json:"WarnCode,omitzero" validate:"omitempty,enum"`
	WarnMessage *string           `json:"WarnMessage,omitzero"`
}

// DetectKeyPhrasesInput asks for the key noun phrases of a document
type DetectKeyPhrasesInput struct {
	Text         *string       `json:"Text,omitzero" validate:"required" constraint:"required,min=1,maxbytes=100000"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

// DetectKeyPhrasesOutput lists key phrases in document order
type DetectKeyPhrasesOutput struct {
	KeyPhrases []KeyPhrase `json:"KeyPhrases,omitzero" validate:"omitempty,dive"`
}

// KeyPhrase is a detected noun phrase
type KeyPhrase struct {
	Score       *float32 `json:"Score,omitzero"`
	Text        *string  `json:"Text,omitzero"`
	BeginOffset *int32   `json:"BeginOffset,omitzero"`
	EndOffset   *int32   `json:"EndOffset,omitzero"`
}

// DetectSentimentInput asks for the overall sentiment of a document
type DetectSentimentInput struct {
	Text         *string       `json:"Text,omitzero" validate:"required" constraint:"required,min=1,maxbytes=5000"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

// DetectSentimentOutput is the prevailing sentiment and its per-class scores
type DetectSentimentOutput struct {
	Sentiment      *SentimentType  `json:"Sentiment,omitzero" validate:"omitempty,enum"`
	SentimentScore *SentimentScore `json:"SentimentScore,omitzero"`
}

// SentimentScore holds a confidence per sentiment class
type SentimentScore struct {
	Positive *float32 `json:"Positive,omitzero"`
	Negative *float32 `json:"Negative,omitzero"`
	Neutral  *float32 `json:"Neutral,omitzero"`
	Mixed    *float32 `json:"Mixed,omitzero"`
}

// DetectSyntaxInput asks for tokens and parts of speech
type DetectSyntaxInput struct {
	Text         *string             `json:"Text,omitzero" validate:"required" constraint:"required,min=1,maxbytes=5000"`
	LanguageCode *SyntaxLanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

// DetectSyntaxOutput lists tokens in document order
type DetectSyntaxOutput struct {
	SyntaxTokens []SyntaxToken `json:"SyntaxTokens,omitzero" validate:"omitempty,dive"`
}

// SyntaxToken is one word or punctuation mark
type SyntaxToken struct {
	TokenId      *int32           `json:"TokenId,omitzero"`
	Text         *string          `json:"Text,omitzero"`
	BeginOffset  *int32           `json:"BeginOffset,omitzero"`
	EndOffset    *int32           `json:"EndOffset,omitzero"`
	PartOfSpeech *PartOfSpeechTag `json:"PartOfSpeech,omitzero"`
}

// PartOfSpeechTag is a tag and its confidence
type PartOfSpeechTag struct {
	Tag   *PartOfSpeechTagType `json:"Tag,omitzero" validate:"omitempty,enum"`
	Score *float32             `json:"Score,omitzero"`
}

// DetectPiiEntitiesInput asks for the location of PII in a document
type DetectPiiEntitiesInput struct {
	Text         *string       `json:"Text,omitzero" validate:"required" constraint:"required,min=1,maxbytes=100000"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

// DetectPiiEntitiesOutput lists PII spans in document order
type DetectPiiEntitiesOutput struct {
	Entities []PiiEntity `json:"Entities,omitzero" validate:"omitempty,dive"`
}

// PiiEntity is one PII span
type PiiEntity struct {
	Score       *float32       `json:"Score,omitzero"`
	Type        *PiiEntityType `json:"Type,omitzero" validate:"omitempty,enum"`
	BeginOffset *int32         `json:"BeginOffset,omitzero"`
	EndOffset   *int32         `json:"EndOffset,omitzero"`
}

// ContainsPiiEntitiesInput asks which PII categories a document contains
type ContainsPiiEntitiesInput struct {
	Text         *string       `json:"Text,omitzero" validate:"required" constraint:"required,min=1,maxbytes=100000"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

// ContainsPiiEntitiesOutput lists one label per detected category
type ContainsPiiEntitiesOutput struct {
	Labels []EntityLabel `json:"Labels,omitzero" validate:"omitempty,dive"`
}

// EntityLabel is a PII category and its confidence
type EntityLabel struct {
	Name  *PiiEntityType `json:"Name,omitzero" validate:"omitempty,enum"`
	Score *float32       `json:"Score,omitzero"`
}

// DetectToxicContentInput scores up to ten text segments
type DetectToxicContentInput struct {
	TextSegments []TextSegment `json:"TextSegments,omitzero" validate:"required,dive" constraint:"required,min=1,max=10,dive"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

// TextSegment is one unit of toxicity analysis
type TextSegment struct {
	Text *string `json:"Text,omitzero" validate:"required" constraint:"required,min=1,maxbytes=1000"`
}

// DetectToxicContentOutput has one entry per input segment, in input order
type DetectToxicContentOutput struct {
	ResultList []ToxicLabels `json:"ResultList,omitzero" validate:"omitempty,dive"`
}

// ToxicLabels scores one segment
type ToxicLabels struct {
	Labels   []ToxicContent `json:"Labels,omitzero" validate:"omitempty,dive"`
	Toxicity *float32       `json:"Toxicity,omitzero"`
}

// ToxicContent is a toxicity category and its confidence
type ToxicContent struct {
	Name  *ToxicContentType `json:"Name,omitzero" validate:"omitempty,enum"`
	Score *float32          `json:"Score,omitzero"`
}

// DetectTargetedSentimentInput asks for sentiment per entity mention
type DetectTargetedSentimentInput struct {
	Text         *string       `json:"Text,omitzero" validate:"required" constraint:"required,min=1,maxbytes=5000"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

// DetectTargetedSentimentOutput groups mentions by co-referring entity
type DetectTargetedSentimentOutput struct {
	Entities []TargetedSentimentEntity `json:"Entities,omitzero" validate:"omitempty,dive"`
}

// TargetedSentimentEntity is a group of mentions of one entity
type TargetedSentimentEntity struct {
	DescriptiveMentionIndex []int32                    `json:"DescriptiveMentionIndex,omitzero"`
	Mentions                []TargetedSentimentMention `json:"Mentions,omitzero" validate:"omitempty,dive"`
}

// TargetedSentimentMention is one mention with its sentiment
type TargetedSentimentMention struct {
	Score            *float32                     `json:"Score,omitzero"`
	GroupScore       *float32                     `json:"GroupScore,omitzero"`
	Text             *string                      `json:"Text,omitzero"`
	Type             *TargetedSentimentEntityType `json:"Type,omitzero" validate:"omitempty,enum"`
	MentionSentiment *MentionSentiment            `json:"MentionSentiment,omitzero"`
	BeginOffset      *int32                       `json:"BeginOffset,omitzero"`
	EndOffset        *int32                       `json:"EndOffset,omitzero"`
}

// MentionSentiment is the sentiment of one mention
type MentionSentiment struct {
	Sentiment      *SentimentType  `json:"Sentiment,omitzero" validate:"omitempty,enum"`
	SentimentScore *SentimentScore `json:"SentimentScore,omitzero"`
}

// ClassifyDocumentInput runs a custom classifier endpoint over Text or Bytes
type ClassifyDocumentInput struct {
	Text                 *string               `json:"Text,omitzero" constraint:"omitempty,min=1,maxbytes=100000"`
	EndpointArn          *string               `json:"EndpointArn,omitzero" validate:"required" constraint:"required,arn=document-classifier-endpoint"`
	Bytes                []byte                `json:"Bytes,omitzero" constraint:"omitempty,min=1"`
	DocumentReaderConfig *DocumentReaderConfig `json:"DocumentReaderConfig,omitzero"`
}

// ClassifyDocumentOutput holds classes for multi-class models and labels for multi-label models
type ClassifyDocumentOutput struct {
	Classes          []DocumentClass        `json:"Classes,omitzero" validate:"omitempty,dive"`
	Labels           []DocumentLabel        `json:"Labels,omitzero" validate:"omitempty,dive"`
	DocumentMetadata *DocumentMetadata      `json:"DocumentMetadata,omitzero"`
	DocumentType     []DocumentTypeListItem `json:"DocumentType,omitzero" validate:"omitempty,dive"`
	Errors           []ErrorsListItem       `json:"Errors,omitzero" validate:"omitempty,dive"`
	Warnings         []WarningsListItem     `json:"Warnings,omitzero" validate:"omitempty,dive"`
}

// DocumentClass is a class and its confidence
type DocumentClass struct {
	Name  *string  `json:"Name,omitzero"`
	Score *float32 `json:"Score,omitzero"`
	Page  *int32   `json:"Page,omitzero"`
}

// DocumentLabel is a label and its confidence
type DocumentLabel struct {
	Name  *string  `json:"Name,omitzero"`
	Score *float32 `json:"Score,omitzero"`
	Page  *int32   `json:"Page,omitzero"`
}

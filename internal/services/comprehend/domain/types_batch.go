package domain

// Batch shapes. Each result list item carries the zero-based Index of the
// document it describes; documents that failed appear in ErrorList instead

// BatchItemError is the failure of one document in a batch
type BatchItemError struct {
	Index        *int32  `json:"Index,omitzero"`
	ErrorCode    *string `json:"ErrorCode,omitzero"`
	ErrorMessage *string `json:"ErrorMessage,omitzero"`
}

// BatchDetectDominantLanguageInput holds up to 25 documents
type BatchDetectDominantLanguageInput struct {
	TextList []string `json:"TextList,omitzero" validate:"required" constraint:"required,min=1,max=25,dive,min=1,maxbytes=5000"`
}

// BatchDetectDominantLanguageOutput splits results from failures
type BatchDetectDominantLanguageOutput struct {
	ResultList []BatchDetectDominantLanguageItemResult `json:"ResultList,omitzero" validate:"required,dive"`
	ErrorList  []BatchItemError                        `json:"ErrorList,omitzero" validate:"required,dive"`
}

// BatchDetectDominantLanguageItemResult is the language result of one document
type BatchDetectDominantLanguageItemResult struct {
	Index     *int32             `json:"Index,omitzero"`
	Languages []DominantLanguage `json:"Languages,omitzero" validate:"omitempty,dive"`
}

// BatchDetectEntitiesInput holds up to 25 documents in one language
type BatchDetectEntitiesInput struct {
	TextList     []string      `json:"TextList,omitzero" validate:"required" constraint:"required,min=1,max=25,dive,min=1,maxbytes=5000"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

type BatchDetectEntitiesOutput struct {
	ResultList []BatchDetectEntitiesItemResult `json:"ResultList,omitzero" validate:"required,dive"`
	ErrorList  []BatchItemError                `json:"ErrorList,omitzero" validate:"required,dive"`
}

type BatchDetectEntitiesItemResult struct {
	Index    *int32   `json:"Index,omitzero"`
	Entities []Entity `json:"Entities,omitzero" validate:"omitempty,dive"`
}

// BatchDetectKeyPhrasesInput holds up to 25 documents in one language
type BatchDetectKeyPhrasesInput struct {
	TextList     []string      `json:"TextList,omitzero" validate:"required" constraint:"required,min=1,max=25,dive,min=1,maxbytes=5000"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

type BatchDetectKeyPhrasesOutput struct {
	ResultList []BatchDetectKeyPhrasesItemResult `json:"ResultList,omitzero" validate:"required,dive"`
	ErrorList  []BatchItemError                  `json:"ErrorList,omitzero" validate:"required,dive"`
}

type BatchDetectKeyPhrasesItemResult struct {
	Index      *int32      `json:"Index,omitzero"`
	KeyPhrases []KeyPhrase `json:"KeyPhrases,omitzero" validate:"omitempty,dive"`
}

// BatchDetectSentimentInput holds up to 25 documents in one language
type BatchDetectSentimentInput struct {
	TextList     []string      `json:"TextList,omitzero" validate:"required" constraint:"required,min=1,max=25,dive,min=1,maxbytes=5000"`
	LanguageCode *LanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

type BatchDetectSentimentOutput struct {
	ResultList []BatchDetectSentimentItemResult `json:"ResultList,omitzero" validate:"required,dive"`
	ErrorList  []BatchItemError                 `json:"ErrorList,omitzero" validate:"required,dive"`
}

type BatchDetectSentimentItemResult struct {
	Index          *int32          `json:"Index,omitzero"`
	Sentiment      *SentimentType  `json:"Sentiment,omitzero" validate:"omitempty,enum"`
	SentimentScore *SentimentScore `json:"SentimentScore,omitzero"`
}

// BatchDetectSyntaxInput holds up to 25 documents in one syntax language
type BatchDetectSyntaxInput struct {
	TextList     []string            `json:"TextList,omitzero" validate:"required" constraint:"required,min=1,max=25,dive,min=1,maxbytes=5000"`
	LanguageCode *SyntaxLanguageCode `json:"LanguageCode,omitzero" validate:"required,enum"`
}

type BatchDetectSyntaxOutput struct {
	ResultList []BatchDetectSyntaxItemResult `json:"ResultList,omitzero" validate:"required,dive"`
	ErrorList  []BatchItemError              `json:"ErrorList,omitzero" validate:"required,dive"`
}

type BatchDetectSyntaxItemResult struct {
	Index        *int32        `json:"Index,omitzero"`
	SyntaxTokens []SyntaxToken `json:"SyntaxTokens,omitzero" validate:"omitempty,dive"`
}

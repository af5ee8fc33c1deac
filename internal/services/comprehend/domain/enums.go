package domain

import "comprehend/internal/core/enum"

// LanguageCode is the language of input text for most real-time and asynchronous operations
type LanguageCode string

// LanguageCode values
const (
	LanguageCodeEn   LanguageCode = "en"
	LanguageCodeEs   LanguageCode = "es"
	LanguageCodeFr   LanguageCode = "fr"
	LanguageCodeDe   LanguageCode = "de"
	LanguageCodeIt   LanguageCode = "it"
	LanguageCodePt   LanguageCode = "pt"
	LanguageCodeAr   LanguageCode = "ar"
	LanguageCodeHi   LanguageCode = "hi"
	LanguageCodeJa   LanguageCode = "ja"
	LanguageCodeKo   LanguageCode = "ko"
	LanguageCodeZh   LanguageCode = "zh"
	LanguageCodeZhTw LanguageCode = "zh-TW"
)

// Values returns every LanguageCode token in definition order
func (LanguageCode) Values() []LanguageCode {
	return []LanguageCode{
		LanguageCodeEn,
		LanguageCodeEs,
		LanguageCodeFr,
		LanguageCodeDe,
		LanguageCodeIt,
		LanguageCodePt,
		LanguageCodeAr,
		LanguageCodeHi,
		LanguageCodeJa,
		LanguageCodeKo,
		LanguageCodeZh,
		LanguageCodeZhTw,
	}
}

// IsKnown reports whether v is a defined LanguageCode
func (v LanguageCode) IsKnown() bool { return enum.Known(v) }

// SyntaxLanguageCode is the subset of languages supported by syntax analysis
type SyntaxLanguageCode string

// SyntaxLanguageCode values
const (
	SyntaxLanguageCodeEn SyntaxLanguageCode = "en"
	SyntaxLanguageCodeEs SyntaxLanguageCode = "es"
	SyntaxLanguageCodeFr SyntaxLanguageCode = "fr"
	SyntaxLanguageCodeDe SyntaxLanguageCode = "de"
	SyntaxLanguageCodeIt SyntaxLanguageCode = "it"
	SyntaxLanguageCodePt SyntaxLanguageCode = "pt"
)

// Values returns every SyntaxLanguageCode token in definition order
func (SyntaxLanguageCode) Values() []SyntaxLanguageCode {
	return []SyntaxLanguageCode{
		SyntaxLanguageCodeEn,
		SyntaxLanguageCodeEs,
		SyntaxLanguageCodeFr,
		SyntaxLanguageCodeDe,
		SyntaxLanguageCodeIt,
		SyntaxLanguageCodePt,
	}
}

// IsKnown reports whether v is a defined SyntaxLanguageCode
func (v SyntaxLanguageCode) IsKnown() bool { return enum.Known(v) }

// EntityType is the category of a detected entity
type EntityType string

// EntityType values
const (
	EntityTypePerson         EntityType = "PERSON"
	EntityTypeLocation       EntityType = "LOCATION"
	EntityTypeOrganization   EntityType = "ORGANIZATION"
	EntityTypeCommercialItem EntityType = "COMMERCIAL_ITEM"
	EntityTypeEvent          EntityType = "EVENT"
	EntityTypeDate           EntityType = "DATE"
	EntityTypeQuantity       EntityType = "QUANTITY"
	EntityTypeTitle          EntityType = "TITLE"
	EntityTypeOther          EntityType = "OTHER"
)

// Values returns every EntityType token in definition order
func (EntityType) Values() []EntityType {
	return []EntityType{
		EntityTypePerson,
		EntityTypeLocation,
		EntityTypeOrganization,
		EntityTypeCommercialItem,
		EntityTypeEvent,
		EntityTypeDate,
		EntityTypeQuantity,
		EntityTypeTitle,
		EntityTypeOther,
	}
}

// IsKnown reports whether v is a defined EntityType
func (v EntityType) IsKnown() bool { return enum.Known(v) }

// SentimentType is the prevailing sentiment of a document or mention
type SentimentType string

// SentimentType values
const (
	SentimentTypePositive SentimentType = "POSITIVE"
	SentimentTypeNegative SentimentType = "NEGATIVE"
	SentimentTypeNeutral  SentimentType = "NEUTRAL"
	SentimentTypeMixed    SentimentType = "MIXED"
)

// Values returns every SentimentType token in definition order
func (SentimentType) Values() []SentimentType {
	return []SentimentType{
		SentimentTypePositive,
		SentimentTypeNegative,
		SentimentTypeNeutral,
		SentimentTypeMixed,
	}
}

// IsKnown reports whether v is a defined SentimentType
func (v SentimentType) IsKnown() bool { return enum.Known(v) }

// PartOfSpeechTagType is a universal part-of-speech tag
type PartOfSpeechTagType string

// PartOfSpeechTagType values
const (
	PartOfSpeechTagTypeAdj   PartOfSpeechTagType = "ADJ"
	PartOfSpeechTagTypeAdp   PartOfSpeechTagType = "ADP"
	PartOfSpeechTagTypeAdv   PartOfSpeechTagType = "ADV"
	PartOfSpeechTagTypeAux   PartOfSpeechTagType = "AUX"
	PartOfSpeechTagTypeConj  PartOfSpeechTagType = "CONJ"
	PartOfSpeechTagTypeCconj PartOfSpeechTagType = "CCONJ"
	PartOfSpeechTagTypeDet   PartOfSpeechTagType = "DET"
	PartOfSpeechTagTypeIntj  PartOfSpeechTagType = "INTJ"
	PartOfSpeechTagTypeNoun  PartOfSpeechTagType = "NOUN"
	PartOfSpeechTagTypeNum   PartOfSpeechTagType = "NUM"
	PartOfSpeechTagTypeO     PartOfSpeechTagType = "O"
	PartOfSpeechTagTypePart  PartOfSpeechTagType = "PART"
	PartOfSpeechTagTypePron  PartOfSpeechTagType = "PRON"
	PartOfSpeechTagTypePropn PartOfSpeechTagType = "PROPN"
	PartOfSpeechTagTypePunct PartOfSpeechTagType = "PUNCT"
	PartOfSpeechTagTypeSconj PartOfSpeechTagType = "SCONJ"
	PartOfSpeechTagTypeSym   PartOfSpeechTagType = "SYM"
	PartOfSpeechTagTypeVerb  PartOfSpeechTagType = "VERB"
)

// Values returns every PartOfSpeechTagType token in definition order
func (PartOfSpeechTagType) Values() []PartOfSpeechTagType {
	return []PartOfSpeechTagType{
		PartOfSpeechTagTypeAdj,
		PartOfSpeechTagTypeAdp,
		PartOfSpeechTagTypeAdv,
		PartOfSpeechTagTypeAux,
		PartOfSpeechTagTypeConj,
		PartOfSpeechTagTypeCconj,
		PartOfSpeechTagTypeDet,
		PartOfSpeechTagTypeIntj,
		PartOfSpeechTagTypeNoun,
		PartOfSpeechTagTypeNum,
		PartOfSpeechTagTypeO,
		PartOfSpeechTagTypePart,
		PartOfSpeechTagTypePron,
		PartOfSpeechTagTypePropn,
		PartOfSpeechTagTypePunct,
		PartOfSpeechTagTypeSconj,
		PartOfSpeechTagTypeSym,
		PartOfSpeechTagTypeVerb,
	}
}

// IsKnown reports whether v is a defined PartOfSpeechTagType
func (v PartOfSpeechTagType) IsKnown() bool { return enum.Known(v) }

// PiiEntityType is a category of personally identifiable information
type PiiEntityType string

// PiiEntityType values
const (
	PiiEntityTypeBankAccountNumber                   PiiEntityType = "BANK_ACCOUNT_NUMBER"
	PiiEntityTypeBankRouting                         PiiEntityType = "BANK_ROUTING"
	PiiEntityTypeCreditDebitNumber                   PiiEntityType = "CREDIT_DEBIT_NUMBER"
	PiiEntityTypeCreditDebitCvv                      PiiEntityType = "CREDIT_DEBIT_CVV"
	PiiEntityTypeCreditDebitExpiry                   PiiEntityType = "CREDIT_DEBIT_EXPIRY"
	PiiEntityTypePin                                 PiiEntityType = "PIN"
	PiiEntityTypeEmail                               PiiEntityType = "EMAIL"
	PiiEntityTypeAddress                             PiiEntityType = "ADDRESS"
	PiiEntityTypeName                                PiiEntityType = "NAME"
	PiiEntityTypePhone                               PiiEntityType = "PHONE"
	PiiEntityTypeSsn                                 PiiEntityType = "SSN"
	PiiEntityTypeDateTime                            PiiEntityType = "DATE_TIME"
	PiiEntityTypePassportNumber                      PiiEntityType = "PASSPORT_NUMBER"
	PiiEntityTypeDriverId                            PiiEntityType = "DRIVER_ID"
	PiiEntityTypeUrl                                 PiiEntityType = "URL"
	PiiEntityTypeAge                                 PiiEntityType = "AGE"
	PiiEntityTypeUsername                            PiiEntityType = "USERNAME"
	PiiEntityTypePassword                            PiiEntityType = "PASSWORD"
	PiiEntityTypeAwsAccessKey                        PiiEntityType = "AWS_ACCESS_KEY"
	PiiEntityTypeAwsSecretKey                        PiiEntityType = "AWS_SECRET_KEY"
	PiiEntityTypeIpAddress                           PiiEntityType = "IP_ADDRESS"
	PiiEntityTypeMacAddress                          PiiEntityType = "MAC_ADDRESS"
	PiiEntityTypeAll                                 PiiEntityType = "ALL"
	PiiEntityTypeLicensePlate                        PiiEntityType = "LICENSE_PLATE"
	PiiEntityTypeVehicleIdentificationNumber         PiiEntityType = "VEHICLE_IDENTIFICATION_NUMBER"
	PiiEntityTypeUkNationalInsuranceNumber           PiiEntityType = "UK_NATIONAL_INSURANCE_NUMBER"
	PiiEntityTypeCaSocialInsuranceNumber             PiiEntityType = "CA_SOCIAL_INSURANCE_NUMBER"
	PiiEntityTypeUsIndividualTaxIdentificationNumber PiiEntityType = "US_INDIVIDUAL_TAX_IDENTIFICATION_NUMBER"
	PiiEntityTypeUkUniqueTaxpayerReferenceNumber     PiiEntityType = "UK_UNIQUE_TAXPAYER_REFERENCE_NUMBER"
	PiiEntityTypeInPermanentAccountNumber            PiiEntityType = "IN_PERMANENT_ACCOUNT_NUMBER"
	PiiEntityTypeInNrega                             PiiEntityType = "IN_NREGA"
	PiiEntityTypeInAadhaar                           PiiEntityType = "IN_AADHAAR"
	PiiEntityTypeInVoterNumber                       PiiEntityType = "IN_VOTER_NUMBER"
	PiiEntityTypeUkNationalHealthServiceNumber       PiiEntityType = "UK_NATIONAL_HEALTH_SERVICE_NUMBER"
	PiiEntityTypeCaHealthNumber                      PiiEntityType = "CA_HEALTH_NUMBER"
	PiiEntityTypeInternationalBankAccountNumber      PiiEntityType = "INTERNATIONAL_BANK_ACCOUNT_NUMBER"
	PiiEntityTypeSwiftCode                           PiiEntityType = "SWIFT_CODE"
)

// Values returns every PiiEntityType token in definition order
func (PiiEntityType) Values() []PiiEntityType {
	return []PiiEntityType{
		PiiEntityTypeBankAccountNumber,
		PiiEntityTypeBankRouting,
		PiiEntityTypeCreditDebitNumber,
		PiiEntityTypeCreditDebitCvv,
		PiiEntityTypeCreditDebitExpiry,
		PiiEntityTypePin,
		PiiEntityTypeEmail,
		PiiEntityTypeAddress,
		PiiEntityTypeName,
		PiiEntityTypePhone,
		PiiEntityTypeSsn,
		PiiEntityTypeDateTime,
		PiiEntityTypePassportNumber,
		PiiEntityTypeDriverId,
		PiiEntityTypeUrl,
		PiiEntityTypeAge,
		PiiEntityTypeUsername,
		PiiEntityTypePassword,
		PiiEntityTypeAwsAccessKey,
		PiiEntityTypeAwsSecretKey,
		PiiEntityTypeIpAddress,
		PiiEntityTypeMacAddress,
		PiiEntityTypeAll,
		PiiEntityTypeLicensePlate,
		PiiEntityTypeVehicleIdentificationNumber,
		PiiEntityTypeUkNationalInsuranceNumber,
		PiiEntityTypeCaSocialInsuranceNumber,
		PiiEntityTypeUsIndividualTaxIdentificationNumber,
		PiiEntityTypeUkUniqueTaxpayerReferenceNumber,
		PiiEntityTypeInPermanentAccountNumber,
		PiiEntityTypeInNrega,
		PiiEntityTypeInAadhaar,
		PiiEntityTypeInVoterNumber,
		PiiEntityTypeUkNationalHealthServiceNumber,
		PiiEntityTypeCaHealthNumber,
		PiiEntityTypeInternationalBankAccountNumber,
		PiiEntityTypeSwiftCode,
	}
}

// IsKnown reports whether v is a defined PiiEntityType
func (v PiiEntityType) IsKnown() bool { return enum.Known(v) }

// ToxicContentType is a toxicity label
type ToxicContentType string

// ToxicContentType values
const (
	ToxicContentTypeGraphic           ToxicContentType = "GRAPHIC"
	ToxicContentTypeHarassmentOrAbuse ToxicContentType = "HARASSMENT_OR_ABUSE"
	ToxicContentTypeHateSpeech        ToxicContentType = "HATE_SPEECH"
	ToxicContentTypeInsult            ToxicContentType = "INSULT"
	ToxicContentTypeProfanity         ToxicContentType = "PROFANITY"
	ToxicContentTypeSexual            ToxicContentType = "SEXUAL"
	ToxicContentTypeViolenceOrThreat  ToxicContentType = "VIOLENCE_OR_THREAT"
)

// Values returns every ToxicContentType token in definition order
func (ToxicContentType) Values() []ToxicContentType {
	return []ToxicContentType{
		ToxicContentTypeGraphic,
		ToxicContentTypeHarassmentOrAbuse,
		ToxicContentTypeHateSpeech,
		ToxicContentTypeInsult,
		ToxicContentTypeProfanity,
		ToxicContentTypeSexual,
		ToxicContentTypeViolenceOrThreat,
	}
}

// IsKnown reports whether v is a defined ToxicContentType
func (v ToxicContentType) IsKnown() bool { return enum.Known(v) }

// TargetedSentimentEntityType is the category of a targeted sentiment mention
type TargetedSentimentEntityType string

// TargetedSentimentEntityType values
const (
	TargetedSentimentEntityTypePerson         TargetedSentimentEntityType = "PERSON"
	TargetedSentimentEntityTypeLocation       TargetedSentimentEntityType = "LOCATION"
	TargetedSentimentEntityTypeOrganization   TargetedSentimentEntityType = "ORGANIZATION"
	TargetedSentimentEntityTypeFacility       TargetedSentimentEntityType = "FACILITY"
	TargetedSentimentEntityTypeBrand          TargetedSentimentEntityType = "BRAND"
	TargetedSentimentEntityTypeCommercialItem TargetedSentimentEntityType = "COMMERCIAL_ITEM"
	TargetedSentimentEntityTypeMovie          TargetedSentimentEntityType = "MOVIE"
	TargetedSentimentEntityTypeMusic          TargetedSentimentEntityType = "MUSIC"
	TargetedSentimentEntityTypeBook           TargetedSentimentEntityType = "BOOK"
	TargetedSentimentEntityTypeSoftware       TargetedSentimentEntityType = "SOFTWARE"
	TargetedSentimentEntityTypeGame           TargetedSentimentEntityType = "GAME"
	TargetedSentimentEntityTypePersonalTitle  TargetedSentimentEntityType = "PERSONAL_TITLE"
	TargetedSentimentEntityTypeEvent          TargetedSentimentEntityType = "EVENT"
	TargetedSentimentEntityTypeDate           TargetedSentimentEntityType = "DATE"
	TargetedSentimentEntityTypeQuantity       TargetedSentimentEntityType = "QUANTITY"
	TargetedSentimentEntityTypeAttribute      TargetedSentimentEntityType = "ATTRIBUTE"
	TargetedSentimentEntityTypeOther          TargetedSentimentEntityType = "OTHER"
)

// Values returns every TargetedSentimentEntityType token in definition order
func (TargetedSentimentEntityType) Values() []TargetedSentimentEntityType {
	return []TargetedSentimentEntityType{
		TargetedSentimentEntityTypePerson,
		TargetedSentimentEntityTypeLocation,
		TargetedSentimentEntityTypeOrganization,
		TargetedSentimentEntityTypeFacility,
		TargetedSentimentEntityTypeBrand,
		TargetedSentimentEntityTypeCommercialItem,
		TargetedSentimentEntityTypeMovie,
		TargetedSentimentEntityTypeMusic,
		TargetedSentimentEntityTypeBook,
		TargetedSentimentEntityTypeSoftware,
		TargetedSentimentEntityTypeGame,
		TargetedSentimentEntityTypePersonalTitle,
		TargetedSentimentEntityTypeEvent,
		TargetedSentimentEntityTypeDate,
		TargetedSentimentEntityTypeQuantity,
		TargetedSentimentEntityTypeAttribute,
		TargetedSentimentEntityTypeOther,
	}
}

// IsKnown reports whether v is a defined TargetedSentimentEntityType
func (v TargetedSentimentEntityType) IsKnown() bool { return enum.Known(v) }

// JobStatus is the lifecycle state of an asynchronous analysis job
type JobStatus string

// JobStatus values
const (
	JobStatusSubmitted     JobStatus = "SUBMITTED"
	JobStatusInProgress    JobStatus = "IN_PROGRESS"
	JobStatusCompleted     JobStatus = "COMPLETED"
	JobStatusFailed        JobStatus = "FAILED"
	JobStatusStopRequested JobStatus = "STOP_REQUESTED"
	JobStatusStopped       JobStatus = "STOPPED"
)

// Values returns every JobStatus token in definition order
func (JobStatus) Values() []JobStatus {
	return []JobStatus{
		JobStatusSubmitted,
		JobStatusInProgress,
		JobStatusCompleted,
		JobStatusFailed,
		JobStatusStopRequested,
		JobStatusStopped,
	}
}

// IsKnown reports whether v is a defined JobStatus
func (v JobStatus) IsKnown() bool { return enum.Known(v) }

// ModelStatus is the training state of a custom model
type ModelStatus string

// ModelStatus values
const (
	ModelStatusSubmitted          ModelStatus = "SUBMITTED"
	ModelStatusTraining           ModelStatus = "TRAINING"
	ModelStatusDeleting           ModelStatus = "DELETING"
	ModelStatusStopRequested      ModelStatus = "STOP_REQUESTED"
	ModelStatusStopped            ModelStatus = "STOPPED"
	ModelStatusInError            ModelStatus = "IN_ERROR"
	ModelStatusTrained            ModelStatus = "TRAINED"
	ModelStatusTrainedWithWarning ModelStatus = "TRAINED_WITH_WARNING"
)

// Values returns every ModelStatus token in definition order
func (ModelStatus) Values() []ModelStatus {
	return []ModelStatus{
		ModelStatusSubmitted,
		ModelStatusTraining,
		ModelStatusDeleting,
		ModelStatusStopRequested,
		ModelStatusStopped,
		ModelStatusInError,
		ModelStatusTrained,
		ModelStatusTrainedWithWarning,
	}
}

// IsKnown reports whether v is a defined ModelStatus
func (v ModelStatus) IsKnown() bool { return enum.Known(v) }

// EndpointStatus is the provisioning state of a model endpoint
type EndpointStatus string

// EndpointStatus values
const (
	EndpointStatusCreating  EndpointStatus = "CREATING"
	EndpointStatusDeleting  EndpointStatus = "DELETING"
	EndpointStatusFailed    EndpointStatus = "FAILED"
	EndpointStatusInService EndpointStatus = "IN_SERVICE"
	EndpointStatusUpdating  EndpointStatus = "UPDATING"
)

// Values returns every EndpointStatus token in definition order
func (EndpointStatus) Values() []EndpointStatus {
	return []EndpointStatus{
		EndpointStatusCreating,
		EndpointStatusDeleting,
		EndpointStatusFailed,
		EndpointStatusInService,
		EndpointStatusUpdating,
	}
}

// IsKnown reports whether v is a defined EndpointStatus
func (v EndpointStatus) IsKnown() bool { return enum.Known(v) }

// FlywheelStatus is the state of a flywheel
type FlywheelStatus string

// FlywheelStatus values
const (
	FlywheelStatusCreating FlywheelStatus = "CREATING"
	FlywheelStatusActive   FlywheelStatus = "ACTIVE"
	FlywheelStatusUpdating FlywheelStatus = "UPDATING"
	FlywheelStatusDeleting FlywheelStatus = "DELETING"
	FlywheelStatusFailed   FlywheelStatus = "FAILED"
)

// Values returns every FlywheelStatus token in definition order
func (FlywheelStatus) Values() []FlywheelStatus {
	return []FlywheelStatus{
		FlywheelStatusCreating,
		FlywheelStatusActive,
		FlywheelStatusUpdating,
		FlywheelStatusDeleting,
		FlywheelStatusFailed,
	}
}

// IsKnown reports whether v is a defined FlywheelStatus
func (v FlywheelStatus) IsKnown() bool { return enum.Known(v) }

// ModelType is the kind of model a flywheel trains
type ModelType string

// ModelType values
const (
	ModelTypeDocumentClassifier ModelType = "DOCUMENT_CLASSIFIER"
	ModelTypeEntityRecognizer   ModelType = "ENTITY_RECOGNIZER"
)

// Values returns every ModelType token in definition order
func (ModelType) Values() []ModelType {
	return []ModelType{
		ModelTypeDocumentClassifier,
		ModelTypeEntityRecognizer,
	}
}

// IsKnown reports whether v is a defined ModelType
func (v ModelType) IsKnown() bool { return enum.Known(v) }

// InputFormat is how documents are laid out in input files
type InputFormat string

// InputFormat values
const (
	InputFormatOneDocPerFile InputFormat = "ONE_DOC_PER_FILE"
	InputFormatOneDocPerLine InputFormat = "ONE_DOC_PER_LINE"
)

// Values returns every InputFormat token in definition order
func (InputFormat) Values() []InputFormat {
	return []InputFormat{
		InputFormatOneDocPerFile,
		InputFormatOneDocPerLine,
	}
}

// IsKnown reports whether v is a defined InputFormat
func (v InputFormat) IsKnown() bool { return enum.Known(v) }

// DocumentClassifierMode is whether a classifier assigns one or many labels
type DocumentClassifierMode string

// DocumentClassifierMode values
const (
	DocumentClassifierModeMultiClass DocumentClassifierMode = "MULTI_CLASS"
	DocumentClassifierModeMultiLabel DocumentClassifierMode = "MULTI_LABEL"
)

// Values returns every DocumentClassifierMode token in definition order
func (DocumentClassifierMode) Values() []DocumentClassifierMode {
	return []DocumentClassifierMode{
		DocumentClassifierModeMultiClass,
		DocumentClassifierModeMultiLabel,
	}
}

// IsKnown reports whether v is a defined DocumentClassifierMode
func (v DocumentClassifierMode) IsKnown() bool { return enum.Known(v) }

// DocumentClassifierDataFormat is the training data layout
type DocumentClassifierDataFormat string

// DocumentClassifierDataFormat values
const (
	DocumentClassifierDataFormatComprehendCsv     DocumentClassifierDataFormat = "COMPREHEND_CSV"
	DocumentClassifierDataFormatAugmentedManifest DocumentClassifierDataFormat = "AUGMENTED_MANIFEST"
)

// Values returns every DocumentClassifierDataFormat token in definition order
func (DocumentClassifierDataFormat) Values() []DocumentClassifierDataFormat {
	return []DocumentClassifierDataFormat{
		DocumentClassifierDataFormatComprehendCsv,
		DocumentClassifierDataFormatAugmentedManifest,
	}
}

// IsKnown reports whether v is a defined DocumentClassifierDataFormat
func (v DocumentClassifierDataFormat) IsKnown() bool { return enum.Known(v) }

// DocumentClassifierDocumentTypeFormat is the kind of training documents
type DocumentClassifierDocumentTypeFormat string

// DocumentClassifierDocumentTypeFormat values
const (
	DocumentClassifierDocumentTypeFormatPlainTextDocument      DocumentClassifierDocumentTypeFormat = "PLAIN_TEXT_DOCUMENT"
	DocumentClassifierDocumentTypeFormatSemiStructuredDocument DocumentClassifierDocumentTypeFormat = "SEMI_STRUCTURED_DOCUMENT"
)

// Values returns every DocumentClassifierDocumentTypeFormat token in definition order
func (DocumentClassifierDocumentTypeFormat) Values() []DocumentClassifierDocumentTypeFormat {
	return []DocumentClassifierDocumentTypeFormat{
		DocumentClassifierDocumentTypeFormatPlainTextDocument,
		DocumentClassifierDocumentTypeFormatSemiStructuredDocument,
	}
}

// IsKnown reports whether v is a defined DocumentClassifierDocumentTypeFormat
func (v DocumentClassifierDocumentTypeFormat) IsKnown() bool { return enum.Known(v) }

// DocumentReadAction is the text extraction action used for documents
type DocumentReadAction string

// DocumentReadAction values
const (
	DocumentReadActionTextractDetectDocumentText DocumentReadAction = "TEXTRACT_DETECT_DOCUMENT_TEXT"
	DocumentReadActionTextractAnalyzeDocument    DocumentReadAction = "TEXTRACT_ANALYZE_DOCUMENT"
)

// Values returns every DocumentReadAction token in definition order
func (DocumentReadAction) Values() []DocumentReadAction {
	return []DocumentReadAction{
		DocumentReadActionTextractDetectDocumentText,
		DocumentReadActionTextractAnalyzeDocument,
	}
}

// IsKnown reports whether v is a defined DocumentReadAction
func (v DocumentReadAction) IsKnown() bool { return enum.Known(v) }

// DocumentReadMode is when the configured read action applies
type DocumentReadMode string

// DocumentReadMode values
const (
	DocumentReadModeServiceDefault          DocumentReadMode = "SERVICE_DEFAULT"
	DocumentReadModeForceDocumentReadAction DocumentReadMode = "FORCE_DOCUMENT_READ_ACTION"
)

// Values returns every DocumentReadMode token in definition order
func (DocumentReadMode) Values() []DocumentReadMode {
	return []DocumentReadMode{
		DocumentReadModeServiceDefault,
		DocumentReadModeForceDocumentReadAction,
	}
}

// IsKnown reports whether v is a defined DocumentReadMode
func (v DocumentReadMode) IsKnown() bool { return enum.Known(v) }

// DocumentReadFeatureTypes is an analysis feature of the extraction action
type DocumentReadFeatureTypes string

// DocumentReadFeatureTypes values
const (
	DocumentReadFeatureTypesTables DocumentReadFeatureTypes = "TABLES"
	DocumentReadFeatureTypesForms  DocumentReadFeatureTypes = "FORMS"
)

// Values returns every DocumentReadFeatureTypes token in definition order
func (DocumentReadFeatureTypes) Values() []DocumentReadFeatureTypes {
	return []DocumentReadFeatureTypes{
		DocumentReadFeatureTypesTables,
		DocumentReadFeatureTypesForms,
	}
}

// IsKnown reports whether v is a defined DocumentReadFeatureTypes
func (v DocumentReadFeatureTypes) IsKnown() bool { return enum.Known(v) }

// DocumentType is the detected format of an input document page
type DocumentType string

// DocumentType values
const (
	DocumentTypeNativePdf                      DocumentType = "NATIVE_PDF"
	DocumentTypeScannedPdf                     DocumentType = "SCANNED_PDF"
	DocumentTypeMsWord                         DocumentType = "MS_WORD"
	DocumentTypeImage                          DocumentType = "IMAGE"
	DocumentTypePlainText                      DocumentType = "PLAIN_TEXT"
	DocumentTypeTextractDetectDocumentTextJson DocumentType = "TEXTRACT_DETECT_DOCUMENT_TEXT_JSON"
	DocumentTypeTextractAnalyzeDocumentJson    DocumentType = "TEXTRACT_ANALYZE_DOCUMENT_JSON"
)

// Values returns every DocumentType token in definition order
func (DocumentType) Values() []DocumentType {
	return []DocumentType{
		DocumentTypeNativePdf,
		DocumentTypeScannedPdf,
		DocumentTypeMsWord,
		DocumentTypeImage,
		DocumentTypePlainText,
		DocumentTypeTextractDetectDocumentTextJson,
		DocumentTypeTextractAnalyzeDocumentJson,
	}
}

// IsKnown reports whether v is a defined DocumentType
func (v DocumentType) IsKnown() bool { return enum.Known(v) }

// PageBasedErrorCode is a per-page extraction failure
type PageBasedErrorCode string

// PageBasedErrorCode values
const (
	PageBasedErrorCodeTextractBadPage                       PageBasedErrorCode = "TEXTRACT_BAD_PAGE"
	PageBasedErrorCodeTextractProvisionedThroughputExceeded PageBasedErrorCode = "TEXTRACT_PROVISIONED_THROUGHPUT_EXCEEDED"
	PageBasedErrorCodePageCharactersExceeded                PageBasedErrorCode = "PAGE_CHARACTERS_EXCEEDED"
	PageBasedErrorCodePageSizeExceeded                      PageBasedErrorCode = "PAGE_SIZE_EXCEEDED"
	PageBasedErrorCodeInternalServerError                   PageBasedErrorCode = "INTERNAL_SERVER_ERROR"
)

// Values returns every PageBasedErrorCode token in definition order
func (PageBasedErrorCode) Values() []PageBasedErrorCode {
	return []PageBasedErrorCode{
		PageBasedErrorCodeTextractBadPage,
		PageBasedErrorCodeTextractProvisionedThroughputExceeded,
		PageBasedErrorCodePageCharactersExceeded,
		PageBasedErrorCodePageSizeExceeded,
		PageBasedErrorCodeInternalServerError,
	}
}

// IsKnown reports whether v is a defined PageBasedErrorCode
func (v PageBasedErrorCode) IsKnown() bool { return enum.Known(v) }

// PageBasedWarning is a per-page model mismatch warning
type PageBasedWarning string

// PageBasedWarning values
const (
	PageBasedWarningInferencingPlaintextWithNativeTrainedModel         PageBasedWarning = "INFERENCING_PLAINTEXT_WITH_NATIVE_TRAINED_MODEL"
	PageBasedWarningInferencingNativeDocumentWithPlaintextTrainedModel PageBasedWarning = "INFERENCING_NATIVE_DOCUMENT_WITH_PLAINTEXT_TRAINED_MODEL"
)

// Values returns every PageBasedWarning token in definition order
func (PageBasedWarning) Values() []PageBasedWarning {
	return []PageBasedWarning{
		PageBasedWarningInferencingPlaintextWithNativeTrainedModel,
		PageBasedWarningInferencingNativeDocumentWithPlaintextTrainedModel,
	}
}

// IsKnown reports whether v is a defined PageBasedWarning
func (v PageBasedWarning) IsKnown() bool { return enum.Known(v) }

// PiiEntitiesDetectionMode is whether a PII job returns offsets or redacted copies
type PiiEntitiesDetectionMode string

// PiiEntitiesDetectionMode values
const (
	PiiEntitiesDetectionModeOnlyRedaction PiiEntitiesDetectionMode = "ONLY_REDACTION"
	PiiEntitiesDetectionModeOnlyOffsets   PiiEntitiesDetectionMode = "ONLY_OFFSETS"
)

// Values returns every PiiEntitiesDetectionMode token in definition order
func (PiiEntitiesDetectionMode) Values() []PiiEntitiesDetectionMode {
	return []PiiEntitiesDetectionMode{
		PiiEntitiesDetectionModeOnlyRedaction,
		PiiEntitiesDetectionModeOnlyOffsets,
	}
}

// IsKnown reports whether v is a defined PiiEntitiesDetectionMode
func (v PiiEntitiesDetectionMode) IsKnown() bool { return enum.Known(v) }

// PiiEntitiesDetectionMaskMode is how redacted PII is rendered
type PiiEntitiesDetectionMaskMode string

// PiiEntitiesDetectionMaskMode values
const (
	PiiEntitiesDetectionMaskModeMask                     PiiEntitiesDetectionMaskMode = "MASK"
	PiiEntitiesDetectionMaskModeReplaceWithPiiEntityType PiiEntitiesDetectionMaskMode = "REPLACE_WITH_PII_ENTITY_TYPE"
)

// Values returns every PiiEntitiesDetectionMaskMode token in definition order
func (PiiEntitiesDetectionMaskMode) Values() []PiiEntitiesDetectionMaskMode {
	return []PiiEntitiesDetectionMaskMode{
		PiiEntitiesDetectionMaskModeMask,
		PiiEntitiesDetectionMaskModeReplaceWithPiiEntityType,
	}
}

// IsKnown reports whether v is a defined PiiEntitiesDetectionMaskMode
func (v PiiEntitiesDetectionMaskMode) IsKnown() bool { return enum.Known(v) }

// InvalidRequestReason is why a request was rejected as invalid
type InvalidRequestReason string

// InvalidRequestReason values
const (
	InvalidRequestReasonInvalidDocument InvalidRequestReason = "INVALID_DOCUMENT"
)

// Values returns every InvalidRequestReason token in definition order
func (InvalidRequestReason) Values() []InvalidRequestReason {
	return []InvalidRequestReason{
		InvalidRequestReasonInvalidDocument,
	}
}

// IsKnown reports whether v is a defined InvalidRequestReason
func (v InvalidRequestReason) IsKnown() bool { return enum.Known(v) }

// InvalidRequestDetailReason is which document rule an invalid request broke
type InvalidRequestDetailReason string

// InvalidRequestDetailReason values
const (
	InvalidRequestDetailReasonDocumentSizeExceeded InvalidRequestDetailReason = "DOCUMENT_SIZE_EXCEEDED"
	InvalidRequestDetailReasonUnsupportedDocType   InvalidRequestDetailReason = "UNSUPPORTED_DOC_TYPE"
	InvalidRequestDetailReasonPageLimitExceeded    InvalidRequestDetailReason = "PAGE_LIMIT_EXCEEDED"
	InvalidRequestDetailReasonTextractAccessDenied InvalidRequestDetailReason = "TEXTRACT_ACCESS_DENIED"
)

// Values returns every InvalidRequestDetailReason token in definition order
func (InvalidRequestDetailReason) Values() []InvalidRequestDetailReason {
	return []InvalidRequestDetailReason{
		InvalidRequestDetailReasonDocumentSizeExceeded,
		InvalidRequestDetailReasonUnsupportedDocType,
		InvalidRequestDetailReasonPageLimitExceeded,
		InvalidRequestDetailReasonTextractAccessDenied,
	}
}

// IsKnown reports whether v is a defined InvalidRequestDetailReason
func (v InvalidRequestDetailReason) IsKnown() bool { return enum.Known(v) }

// Split marks whether a training manifest is used for training or testing
type Split string

// Split values
const (
	SplitTrain Split = "TRAIN"
	SplitTest  Split = "TEST"
)

// Values returns every Split token in definition order
func (Split) Values() []Split {
	return []Split{
		SplitTrain,
		SplitTest,
	}
}

// IsKnown reports whether v is a defined Split
func (v Split) IsKnown() bool { return enum.Known(v) }

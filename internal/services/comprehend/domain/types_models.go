package domain

import (
	"encoding/json"

	"comprehend/internal/core/shape"
)

// Custom model lifecycle: document classifiers, their endpoints, and flywheels

// DocumentClassifierDocuments locates training documents for semi-structured classifiers
type DocumentClassifierDocuments struct {
	S3Uri     *string `json:"S3Uri,omitzero" validate:"required" constraint:"required,max=1024,s3uri"`
	TestS3Uri *string `json:"TestS3Uri,omitzero" constraint:"omitempty,max=1024,s3uri"`
}

// AugmentedManifestsListItem is one SageMaker Ground Truth manifest
type AugmentedManifestsListItem struct {
	S3Uri                *string  `json:"S3Uri,omitzero" validate:"required" constraint:"required,max=1024,s3uri"`
	Split                *Split   `json:"Split,omitzero" validate:"omitempty,enum"`
	AttributeNames       []string `json:"AttributeNames,omitzero" validate:"required"`
	AnnotationDataS3Uri  *string  `json:"AnnotationDataS3Uri,omitzero" constraint:"omitempty,max=1024,s3uri"`
	SourceDocumentsS3Uri *string  `json:"SourceDocumentsS3Uri,omitzero" constraint:"omitempty,max=1024,s3uri"`
}

// DocumentClassifierInputDataConfig describes training data
type DocumentClassifierInputDataConfig struct {
	DataFormat           *DocumentClassifierDataFormat         `json:"DataFormat,omitzero" validate:"omitempty,enum"`
	S3Uri                *string                               `json:"S3Uri,omitzero" constraint:"omitempty,max=1024,s3uri"`
	TestS3Uri            *string                               `json:"TestS3Uri,omitzero" constraint:"omitempty,max=1024,s3uri"`
	LabelDelimiter       *string                               `json:"LabelDelimiter,omitzero" constraint:"omitempty,len=1"`
	AugmentedManifests   []AugmentedManifestsListItem          `json:"AugmentedManifests,omitzero" validate:"omitempty,dive" constraint:"omitempty,dive"`
	DocumentType         *DocumentClassifierDocumentTypeFormat `json:"DocumentType,omitzero" validate:"omitempty,enum"`
	Documents            *DocumentClassifierDocuments          `json:"Documents,omitzero"`
	DocumentReaderConfig *DocumentReaderConfig                 `json:"DocumentReaderConfig,omitzero"`
}

// DocumentClassifierOutputDataConfig is where training writes its confusion matrix and stats
type DocumentClassifierOutputDataConfig struct {
	S3Uri                 *string `json:"S3Uri,omitzero" constraint:"omitempty,max=1024,s3uri"`
	KmsKeyId              *string `json:"KmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	FlywheelStatsS3Prefix *string `json:"FlywheelStatsS3Prefix,omitzero" constraint:"omitempty,max=1024,s3uri"`
}

// ClassifierEvaluationMetrics are the test-set scores of a trained classifier
type ClassifierEvaluationMetrics struct {
	Accuracy       *float64 `json:"Accuracy,omitzero"`
	Precision      *float64 `json:"Precision,omitzero"`
	Recall         *float64 `json:"Recall,omitzero"`
	F1Score        *float64 `json:"F1Score,omitzero"`
	MicroPrecision *float64 `json:"MicroPrecision,omitzero"`
	MicroRecall    *float64 `json:"MicroRecall,omitzero"`
	MicroF1Score   *float64 `json:"MicroF1Score,omitzero"`
	HammingLoss    *float64 `json:"HammingLoss,omitzero"`
}

// ClassifierMetadata summarizes a training run
type ClassifierMetadata struct {
	NumberOfLabels           *int32                       `json:"NumberOfLabels,omitzero"`
	NumberOfTrainedDocuments *int32                       `json:"NumberOfTrainedDocuments,omitzero"`
	NumberOfTestDocuments    *int32                       `json:"NumberOfTestDocuments,omitzero"`
	EvaluationMetrics        *ClassifierEvaluationMetrics `json:"EvaluationMetrics,omitzero"`
}

type CreateDocumentClassifierInput struct {
	DocumentClassifierName *string                             `json:"DocumentClassifierName,omitzero" validate:"required" constraint:"required,min=1,max=63"`
	VersionName            *string                             `json:"VersionName,omitzero" constraint:"omitempty,min=1,max=63"`
	DataAccessRoleArn      *string                             `json:"DataAccessRoleArn,omitzero" validate:"required" constraint:"required,arn=iam-role"`
	Tags                   []Tag                               `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
	InputDataConfig        *DocumentClassifierInputDataConfig  `json:"InputDataConfig,omitzero" validate:"required"`
	OutputDataConfig       *DocumentClassifierOutputDataConfig `json:"OutputDataConfig,omitzero"`
	ClientRequestToken     *string                             `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	LanguageCode           *LanguageCode                       `json:"LanguageCode,omitzero" validate:"required,enum"`
	VolumeKmsKeyId         *string                             `json:"VolumeKmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	VpcConfig              *VpcConfig                          `json:"VpcConfig,omitzero"`
	Mode                   *DocumentClassifierMode             `json:"Mode,omitzero" validate:"omitempty,enum"`
	ModelKmsKeyId          *string                             `json:"ModelKmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	ModelPolicy            *string                             `json:"ModelPolicy,omitzero" constraint:"omitempty,min=1,max=20000"`
}

type CreateDocumentClassifierOutput struct {
	DocumentClassifierArn *string `json:"DocumentClassifierArn,omitzero"`
}

// DocumentClassifierProperties describes one classifier version
type DocumentClassifierProperties struct {
	DocumentClassifierArn *string                             `json:"DocumentClassifierArn,omitzero"`
	LanguageCode          *LanguageCode                       `json:"LanguageCode,omitzero" validate:"omitempty,enum"`
	Status                *ModelStatus                        `json:"Status,omitzero" validate:"omitempty,enum"`
	Message               *string                             `json:"Message,omitzero"`
	SubmitTime            *shape.Timestamp                    `json:"SubmitTime,omitzero"`
	EndTime               *shape.Timestamp                    `json:"EndTime,omitzero"`
	TrainingStartTime     *shape.Timestamp                    `json:"TrainingStartTime,omitzero"`
	TrainingEndTime       *shape.Timestamp                    `json:"TrainingEndTime,omitzero"`
	InputDataConfig       *DocumentClassifierInputDataConfig  `json:"InputDataConfig,omitzero"`
	OutputDataConfig      *DocumentClassifierOutputDataConfig `json:"OutputDataConfig,omitzero"`
	ClassifierMetadata    *ClassifierMetadata                 `json:"ClassifierMetadata,omitzero"`
	DataAccessRoleArn     *string                             `json:"DataAccessRoleArn,omitzero"`
	VolumeKmsKeyId        *string                             `json:"VolumeKmsKeyId,omitzero"`
	VpcConfig             *VpcConfig                          `json:"VpcConfig,omitzero"`
	Mode                  *DocumentClassifierMode             `json:"Mode,omitzero" validate:"omitempty,enum"`
	ModelKmsKeyId         *string                             `json:"ModelKmsKeyId,omitzero"`
	VersionName           *string                             `json:"VersionName,omitzero"`
	SourceModelArn        *string                             `json:"SourceModelArn,omitzero"`
	FlywheelArn           *string                             `json:"FlywheelArn,omitzero"`
}

// DocumentClassifierArnInput names one classifier
type DocumentClassifierArnInput struct {
	DocumentClassifierArn *string `json:"DocumentClassifierArn,omitzero" validate:"required" constraint:"required,arn=document-classifier"`
}

type (
	DescribeDocumentClassifierInput     = DocumentClassifierArnInput
	DeleteDocumentClassifierInput       = DocumentClassifierArnInput
	StopTrainingDocumentClassifierInput = DocumentClassifierArnInput
)

type DescribeDocumentClassifierOutput struct {
	DocumentClassifierProperties *DocumentClassifierProperties `json:"DocumentClassifierProperties,omitzero"`
}

// DeleteDocumentClassifierOutput is empty on the wire
type DeleteDocumentClassifierOutput struct{}

// StopTrainingDocumentClassifierOutput is empty on the wire
type StopTrainingDocumentClassifierOutput struct{}

// DocumentClassifierFilter narrows a classifier listing
type DocumentClassifierFilter struct {
	Status                 *ModelStatus     `json:"Status,omitzero" validate:"omitempty,enum"`
	DocumentClassifierName *string          `json:"DocumentClassifierName,omitzero" constraint:"omitempty,min=1,max=63"`
	SubmitTimeBefore       *shape.Timestamp `json:"SubmitTimeBefore,omitzero"`
	SubmitTimeAfter        *shape.Timestamp `json:"SubmitTimeAfter,omitzero"`
}

type ListDocumentClassifiersInput struct {
	Filter     *DocumentClassifierFilter `json:"Filter,omitzero"`
	NextToken  *string                   `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32                    `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListDocumentClassifiersOutput struct {
	DocumentClassifierPropertiesList []DocumentClassifierProperties `json:"DocumentClassifierPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken                        *string                        `json:"NextToken,omitzero"`
}

// Endpoints

type CreateEndpointInput struct {
	EndpointName          *string `json:"EndpointName,omitzero" validate:"required" constraint:"required,min=1,max=40"`
	ModelArn              *string `json:"ModelArn,omitzero" constraint:"omitempty,arn=any"`
	DesiredInferenceUnits *int32  `json:"DesiredInferenceUnits,omitzero" validate:"required" constraint:"required,min=1"`
	ClientRequestToken    *string `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	Tags                  []Tag   `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
	DataAccessRoleArn     *string `json:"DataAccessRoleArn,omitzero" constraint:"omitempty,arn=iam-role"`
	FlywheelArn           *string `json:"FlywheelArn,omitzero" constraint:"omitempty,arn=flywheel"`
}

type CreateEndpointOutput struct {
	EndpointArn *string `json:"EndpointArn,omitzero"`
	ModelArn    *string `json:"ModelArn,omitzero"`
}

// EndpointProperties describes one real-time inference endpoint
type EndpointProperties struct {
	EndpointArn              *string          `json:"EndpointArn,omitzero"`
	Status                   *EndpointStatus  `json:"Status,omitzero" validate:"omitempty,enum"`
	Message                  *string          `json:"Message,omitzero"`
	ModelArn                 *string          `json:"ModelArn,omitzero"`
	DesiredModelArn          *string          `json:"DesiredModelArn,omitzero"`
	DesiredInferenceUnits    *int32           `json:"DesiredInferenceUnits,omitzero"`
	CurrentInferenceUnits    *int32           `json:"CurrentInferenceUnits,omitzero"`
	CreationTime             *shape.Timestamp `json:"CreationTime,omitzero"`
	LastModifiedTime         *shape.Timestamp `json:"LastModifiedTime,omitzero"`
	DataAccessRoleArn        *string          `json:"DataAccessRoleArn,omitzero"`
	DesiredDataAccessRoleArn *string          `json:"DesiredDataAccessRoleArn,omitzero"`
	FlywheelArn              *string          `json:"FlywheelArn,omitzero"`
}

// EndpointArnInput names one endpoint
type EndpointArnInput struct {
	EndpointArn *string `json:"EndpointArn,omitzero" validate:"required" constraint:"required,arn=any"`
}

type (
	DescribeEndpointInput = EndpointArnInput
	DeleteEndpointInput   = EndpointArnInput
)

type DescribeEndpointOutput struct {
	EndpointProperties *EndpointProperties `json:"EndpointProperties,omitzero"`
}

// DeleteEndpointOutput is empty on the wire
type DeleteEndpointOutput struct{}

type UpdateEndpointInput struct {
	EndpointArn              *string `json:"EndpointArn,omitzero" validate:"required" constraint:"required,arn=any"`
	DesiredModelArn          *string `json:"DesiredModelArn,omitzero" constraint:"omitempty,arn=any"`
	DesiredInferenceUnits    *int32  `json:"DesiredInferenceUnits,omitzero" constraint:"omitempty,min=1"`
	DesiredDataAccessRoleArn *string `json:"DesiredDataAccessRoleArn,omitzero" constraint:"omitempty,arn=iam-role"`
	FlywheelArn              *string `json:"FlywheelArn,omitzero" constraint:"omitempty,arn=flywheel"`
}

type UpdateEndpointOutput struct {
	DesiredModelArn *string `json:"DesiredModelArn,omitzero"`
}

// EndpointFilter narrows an endpoint listing
type EndpointFilter struct {
	ModelArn           *string          `json:"ModelArn,omitzero" constraint:"omitempty,arn=any"`
	Status             *EndpointStatus  `json:"Status,omitzero" validate:"omitempty,enum"`
	CreationTimeBefore *shape.Timestamp `json:"CreationTimeBefore,omitzero"`
	CreationTimeAfter  *shape.Timestamp `json:"CreationTimeAfter,omitzero"`
}

type ListEndpointsInput struct {
	Filter     *EndpointFilter `json:"Filter,omitzero"`
	NextToken  *string         `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32          `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListEndpointsOutput struct {
	EndpointPropertiesList []EndpointProperties `json:"EndpointPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken              *string              `json:"NextToken,omitzero"`
}

// Flywheels are referenced, not managed: only Describe is modeled and the
// task and security configuration travel as opaque JSON

type DescribeFlywheelInput struct {
	FlywheelArn *string `json:"FlywheelArn,omitzero" validate:"required" constraint:"required,arn=flywheel"`
}

// FlywheelProperties describes a flywheel
type FlywheelProperties struct {
	FlywheelArn             *string          `json:"FlywheelArn,omitzero"`
	ActiveModelArn          *string          `json:"ActiveModelArn,omitzero"`
	DataAccessRoleArn       *string          `json:"DataAccessRoleArn,omitzero"`
	TaskConfig              json.RawMessage  `json:"TaskConfig,omitzero"`
	DataLakeS3Uri           *string          `json:"DataLakeS3Uri,omitzero"`
	DataSecurityConfig      json.RawMessage  `json:"DataSecurityConfig,omitzero"`
	Status                  *FlywheelStatus  `json:"Status,omitzero" validate:"omitempty,enum"`
	ModelType               *ModelType       `json:"ModelType,omitzero" validate:"omitempty,enum"`
	Message                 *string          `json:"Message,omitzero"`
	CreationTime            *shape.Timestamp `json:"CreationTime,omitzero"`
	LastModifiedTime        *shape.Timestamp `json:"LastModifiedTime,omitzero"`
	LatestFlywheelIteration *string          `json:"LatestFlywheelIteration,omitzero"`
}

type DescribeFlywheelOutput struct {
	FlywheelProperties *FlywheelProperties `json:"FlywheelProperties,omitzero"`
}

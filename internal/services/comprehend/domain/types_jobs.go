package domain

import "comprehend/internal/core/shape"

// Asynchronous analysis jobs. Every family shares the same Start/Describe/List
// layout; Stop exists for all but topics and document classification

// InputDataConfig locates the documents a job reads
type InputDataConfig struct {
	S3Uri                *string               `json:"S3Uri,omitzero" validate:"required" constraint:"required,max=1024,s3uri"`
	InputFormat          *InputFormat          `json:"InputFormat,omitzero" validate:"omitempty,enum"`
	DocumentReaderConfig *DocumentReaderConfig `json:"DocumentReaderConfig,omitzero"`
}

// OutputDataConfig is where a job writes its results
type OutputDataConfig struct {
	S3Uri    *string `json:"S3Uri,omitzero" validate:"required" constraint:"required,max=1024,s3uri"`
	KmsKeyId *string `json:"KmsKeyId,omitzero" constraint:"omitempty,max=2048"`
}

// PiiOutputDataConfig is the output location reported for PII jobs
type PiiOutputDataConfig struct {
	S3Uri    *string `json:"S3Uri,omitzero" validate:"required"`
	KmsKeyId *string `json:"KmsKeyId,omitzero"`
}

// VpcConfig places job containers in a customer VPC
type VpcConfig struct {
	SecurityGroupIds []string `json:"SecurityGroupIds,omitzero" validate:"required" constraint:"required,min=1,max=5,dive,min=1,max=32"`
	Subnets          []string `json:"Subnets,omitzero" validate:"required" constraint:"required,min=1,max=16,dive,min=1,max=32"`
}

// Tag is a key/value label on a resource
type Tag struct {
	Key   *string `json:"Key,omitzero" validate:"required" constraint:"required,min=1,max=128"`
	Value *string `json:"Value,omitzero" constraint:"omitempty,max=256"`
}

// RedactionConfig controls how a PII job masks what it finds
type RedactionConfig struct {
	PiiEntityTypes []PiiEntityType                `json:"PiiEntityTypes,omitzero" validate:"omitempty,dive,enum"`
	MaskMode       *PiiEntitiesDetectionMaskMode `json:"MaskMode,omitzero" validate:"omitempty,enum"`
	MaskCharacter  *string                        `json:"MaskCharacter,omitzero" constraint:"omitempty,len=1"`
}

// JobFilter narrows a job listing. At most one of JobName, JobStatus or a submit time bound is honored by the service
type JobFilter struct {
	JobName          *string          `json:"JobName,omitzero" constraint:"omitempty,min=1,max=256"`
	JobStatus        *JobStatus       `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	SubmitTimeBefore *shape.Timestamp `json:"SubmitTimeBefore,omitzero"`
	SubmitTimeAfter  *shape.Timestamp `json:"SubmitTimeAfter,omitzero"`
}

type (
	EntitiesDetectionJobFilter         = JobFilter
	SentimentDetectionJobFilter        = JobFilter
	KeyPhrasesDetectionJobFilter       = JobFilter
	DominantLanguageDetectionJobFilter = JobFilter
	PiiEntitiesDetectionJobFilter      = JobFilter
	TopicsDetectionJobFilter           = JobFilter
	DocumentClassificationJobFilter    = JobFilter
)

// DescribeJobInput names one job by id
type DescribeJobInput struct {
	JobId *string `json:"JobId,omitzero" validate:"required" constraint:"required,min=1,max=32"`
}

// StopJobInput names the job to stop
type StopJobInput struct {
	JobId *string `json:"JobId,omitzero" validate:"required" constraint:"required,min=1,max=32"`
}

// StopJobOutput reports the status a stop request left the job in
type StopJobOutput struct {
	JobId     *string    `json:"JobId,omitzero"`
	JobStatus *JobStatus `json:"JobStatus,omitzero" validate:"omitempty,enum"`
}

type (
	DescribeEntitiesDetectionJobInput         = DescribeJobInput
	DescribeSentimentDetectionJobInput        = DescribeJobInput
	DescribeKeyPhrasesDetectionJobInput       = DescribeJobInput
	DescribeDominantLanguageDetectionJobInput = DescribeJobInput
	DescribePiiEntitiesDetectionJobInput      = DescribeJobInput
	DescribeTopicsDetectionJobInput           = DescribeJobInput
	DescribeDocumentClassificationJobInput    = DescribeJobInput

	StopEntitiesDetectionJobInput          = StopJobInput
	StopSentimentDetectionJobInput         = StopJobInput
	StopKeyPhrasesDetectionJobInput        = StopJobInput
	StopDominantLanguageDetectionJobInput  = StopJobInput
	StopPiiEntitiesDetectionJobInput       = StopJobInput
	StopEntitiesDetectionJobOutput         = StopJobOutput
	StopSentimentDetectionJobOutput        = StopJobOutput
	StopKeyPhrasesDetectionJobOutput       = StopJobOutput
	StopDominantLanguageDetectionJobOutput = StopJobOutput
	StopPiiEntitiesDetectionJobOutput      = StopJobOutput
)

// StartJobOutput identifies a newly submitted job
type StartJobOutput struct {
	JobId     *string    `json:"JobId,omitzero"`
	JobArn    *string    `json:"JobArn,omitzero"`
	JobStatus *JobStatus `json:"JobStatus,omitzero" validate:"omitempty,enum"`
}

type (
	StartSentimentDetectionJobOutput        = StartJobOutput
	StartKeyPhrasesDetectionJobOutput       = StartJobOutput
	StartDominantLanguageDetectionJobOutput = StartJobOutput
	StartTopicsDetectionJobOutput           = StartJobOutput
)

// Entities detection

type StartEntitiesDetectionJobInput struct {
	InputDataConfig     *InputDataConfig  `json:"InputDataConfig,omitzero" validate:"required"`
	OutputDataConfig    *OutputDataConfig `json:"OutputDataConfig,omitzero" validate:"required"`
	DataAccessRoleArn   *string           `json:"DataAccessRoleArn,omitzero" validate:"required" constraint:"required,arn=iam-role"`
	JobName             *string           `json:"JobName,omitzero" constraint:"omitempty,min=1,max=256"`
	EntityRecognizerArn *string           `json:"EntityRecognizerArn,omitzero" constraint:"omitempty,arn=entity-recognizer"`
	LanguageCode        *LanguageCode     `json:"LanguageCode,omitzero" validate:"required,enum"`
	ClientRequestToken  *string           `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	VolumeKmsKeyId      *string           `json:"VolumeKmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	VpcConfig           *VpcConfig        `json:"VpcConfig,omitzero"`
	Tags                []Tag             `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
	FlywheelArn         *string           `json:"FlywheelArn,omitzero" constraint:"omitempty,arn=flywheel"`
}

type StartEntitiesDetectionJobOutput struct {
	JobId               *string    `json:"JobId,omitzero"`
	JobArn              *string    `json:"JobArn,omitzero"`
	JobStatus           *JobStatus `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	EntityRecognizerArn *string    `json:"EntityRecognizerArn,omitzero"`
}

// EntitiesDetectionJobProperties describes one entities job
type EntitiesDetectionJobProperties struct {
	JobId               *string           `json:"JobId,omitzero"`
	JobArn              *string           `json:"JobArn,omitzero"`
	JobName             *string           `json:"JobName,omitzero"`
	JobStatus           *JobStatus        `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	Message             *string           `json:"Message,omitzero"`
	SubmitTime          *shape.Timestamp  `json:"SubmitTime,omitzero"`
	EndTime             *shape.Timestamp  `json:"EndTime,omitzero"`
	EntityRecognizerArn *string           `json:"EntityRecognizerArn,omitzero"`
	InputDataConfig     *InputDataConfig  `json:"InputDataConfig,omitzero"`
	OutputDataConfig    *OutputDataConfig `json:"OutputDataConfig,omitzero"`
	LanguageCode        *LanguageCode     `json:"LanguageCode,omitzero" validate:"omitempty,enum"`
	DataAccessRoleArn   *string           `json:"DataAccessRoleArn,omitzero"`
	VolumeKmsKeyId      *string           `json:"VolumeKmsKeyId,omitzero"`
	VpcConfig           *VpcConfig        `json:"VpcConfig,omitzero"`
	FlywheelArn         *string           `json:"FlywheelArn,omitzero"`
}

type DescribeEntitiesDetectionJobOutput struct {
	EntitiesDetectionJobProperties *EntitiesDetectionJobProperties `json:"EntitiesDetectionJobProperties,omitzero"`
}

type ListEntitiesDetectionJobsInput struct {
	Filter     *EntitiesDetectionJobFilter `json:"Filter,omitzero"`
	NextToken  *string                     `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32                      `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListEntitiesDetectionJobsOutput struct {
	EntitiesDetectionJobPropertiesList []EntitiesDetectionJobProperties `json:"EntitiesDetectionJobPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken                          *string                          `json:"NextToken,omitzero"`
}

// Sentiment detection

type StartSentimentDetectionJobInput struct {
	InputDataConfig    *InputDataConfig  `json:"InputDataConfig,omitzero" validate:"required"`
	OutputDataConfig   *OutputDataConfig `json:"OutputDataConfig,omitzero" validate:"required"`
	DataAccessRoleArn  *string           `json:"DataAccessRoleArn,omitzero" validate:"required" constraint:"required,arn=iam-role"`
	JobName            *string           `json:"JobName,omitzero" constraint:"omitempty,min=1,max=256"`
	LanguageCode       *LanguageCode     `json:"LanguageCode,omitzero" validate:"required,enum"`
	ClientRequestToken *string           `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	VolumeKmsKeyId     *string           `json:"VolumeKmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	VpcConfig          *VpcConfig        `json:"VpcConfig,omitzero"`
	Tags               []Tag             `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
}

// SentimentDetectionJobProperties describes one sentiment job
type SentimentDetectionJobProperties struct {
	JobId             *string           `json:"JobId,omitzero"`
	JobArn            *string           `json:"JobArn,omitzero"`
	JobName           *string           `json:"JobName,omitzero"`
	JobStatus         *JobStatus        `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	Message           *string           `json:"Message,omitzero"`
	SubmitTime        *shape.Timestamp  `json:"SubmitTime,omitzero"`
	EndTime           *shape.Timestamp  `json:"EndTime,omitzero"`
	InputDataConfig   *InputDataConfig  `json:"InputDataConfig,omitzero"`
	OutputDataConfig  *OutputDataConfig `json:"OutputDataConfig,omitzero"`
	LanguageCode      *LanguageCode     `json:"LanguageCode,omitzero" validate:"omitempty,enum"`
	DataAccessRoleArn *string           `json:"DataAccessRoleArn,omitzero"`
	VolumeKmsKeyId    *string           `json:"VolumeKmsKeyId,omitzero"`
	VpcConfig         *VpcConfig        `json:"VpcConfig,omitzero"`
}

type DescribeSentimentDetectionJobOutput struct {
	SentimentDetectionJobProperties *SentimentDetectionJobProperties `json:"SentimentDetectionJobProperties,omitzero"`
}

type ListSentimentDetectionJobsInput struct {
	Filter     *SentimentDetectionJobFilter `json:"Filter,omitzero"`
	NextToken  *string                      `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32                       `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListSentimentDetectionJobsOutput struct {
	SentimentDetectionJobPropertiesList []SentimentDetectionJobProperties `json:"SentimentDetectionJobPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken                           *string                           `json:"NextToken,omitzero"`
}

// Key phrases detection

type StartKeyPhrasesDetectionJobInput struct {
	InputDataConfig    *InputDataConfig  `json:"InputDataConfig,omitzero" validate:"required"`
	OutputDataConfig   *OutputDataConfig `json:"OutputDataConfig,omitzero" validate:"required"`
	DataAccessRoleArn  *string           `json:"DataAccessRoleArn,omitzero" validate:"required" constraint:"required,arn=iam-role"`
	JobName            *string           `json:"JobName,omitzero" constraint:"omitempty,min=1,max=256"`
	LanguageCode       *LanguageCode     `json:"LanguageCode,omitzero" validate:"required,enum"`
	ClientRequestToken *string           `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	VolumeKmsKeyId     *string           `json:"VolumeKmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	VpcConfig          *VpcConfig        `json:"VpcConfig,omitzero"`
	Tags               []Tag             `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
}

// KeyPhrasesDetectionJobProperties describes one key phrases job
type KeyPhrasesDetectionJobProperties struct {
	JobId             *string           `json:"JobId,omitzero"`
	JobArn            *string           `json:"JobArn,omitzero"`
	JobName           *string           `json:"JobName,omitzero"`
	JobStatus         *JobStatus        `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	Message           *string           `json:"Message,omitzero"`
	SubmitTime        *shape.Timestamp  `json:"SubmitTime,omitzero"`
	EndTime           *shape.Timestamp  `json:"EndTime,omitzero"`
	InputDataConfig   *InputDataConfig  `json:"InputDataConfig,omitzero"`
	OutputDataConfig  *OutputDataConfig `json:"OutputDataConfig,omitzero"`
	LanguageCode      *LanguageCode     `json:"LanguageCode,omitzero" validate:"omitempty,enum"`
	DataAccessRoleArn *string           `json:"DataAccessRoleArn,omitzero"`
	VolumeKmsKeyId    *string           `json:"VolumeKmsKeyId,omitzero"`
	VpcConfig         *VpcConfig        `json:"VpcConfig,omitzero"`
}

type DescribeKeyPhrasesDetectionJobOutput struct {
	KeyPhrasesDetectionJobProperties *KeyPhrasesDetectionJobProperties `json:"KeyPhrasesDetectionJobProperties,omitzero"`
}

type ListKeyPhrasesDetectionJobsInput struct {
	Filter     *KeyPhrasesDetectionJobFilter `json:"Filter,omitzero"`
	NextToken  *string                       `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32                        `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListKeyPhrasesDetectionJobsOutput struct {
	KeyPhrasesDetectionJobPropertiesList []KeyPhrasesDetectionJobProperties `json:"KeyPhrasesDetectionJobPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken                            *string                            `json:"NextToken,omitzero"`
}

// Dominant language detection

type StartDominantLanguageDetectionJobInput struct {
	InputDataConfig    *InputDataConfig  `json:"InputDataConfig,omitzero" validate:"required"`
	OutputDataConfig   *OutputDataConfig `json:"OutputDataConfig,omitzero" validate:"required"`
	DataAccessRoleArn  *string           `json:"DataAccessRoleArn,omitzero" validate:"required" constraint:"required,arn=iam-role"`
	JobName            *string           `json:"JobName,omitzero" constraint:"omitempty,min=1,max=256"`
	ClientRequestToken *string           `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	VolumeKmsKeyId     *string           `json:"VolumeKmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	VpcConfig          *VpcConfig        `json:"VpcConfig,omitzero"`
	Tags               []Tag             `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
}

// DominantLanguageDetectionJobProperties describes one language job
type DominantLanguageDetectionJobProperties struct {
	JobId             *string           `json:"JobId,omitzero"`
	JobArn            *string           `json:"JobArn,omitzero"`
	JobName           *string           `json:"JobName,omitzero"`
	JobStatus         *JobStatus        `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	Message           *string           `json:"Message,omitzero"`
	SubmitTime        *shape.Timestamp  `json:"SubmitTime,omitzero"`
	EndTime           *shape.Timestamp  `json:"EndTime,omitzero"`
	InputDataConfig   *InputDataConfig  `json:"InputDataConfig,omitzero"`
	OutputDataConfig  *OutputDataConfig `json:"OutputDataConfig,omitzero"`
	DataAccessRoleArn *string           `json:"DataAccessRoleArn,omitzero"`
	VolumeKmsKeyId    *string           `json:"VolumeKmsKeyId,omitzero"`
	VpcConfig         *VpcConfig        `json:"VpcConfig,omitzero"`
}

type DescribeDominantLanguageDetectionJobOutput struct {
	DominantLanguageDetectionJobProperties *DominantLanguageDetectionJobProperties `json:"DominantLanguageDetectionJobProperties,omitzero"`
}

type ListDominantLanguageDetectionJobsInput struct {
	Filter     *DominantLanguageDetectionJobFilter `json:"Filter,omitzero"`
	NextToken  *string                             `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32                              `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListDominantLanguageDetectionJobsOutput struct {
	DominantLanguageDetectionJobPropertiesList []DominantLanguageDetectionJobProperties `json:"DominantLanguageDetectionJobPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken                                  *string                                  `json:"NextToken,omitzero"`
}

// PII entities detection

type StartPiiEntitiesDetectionJobInput struct {
	InputDataConfig    *InputDataConfig          `json:"InputDataConfig,omitzero" validate:"required"`
	OutputDataConfig   *OutputDataConfig         `json:"OutputDataConfig,omitzero" validate:"required"`
	Mode               *PiiEntitiesDetectionMode `json:"Mode,omitzero" validate:"required,enum"`
	RedactionConfig    *RedactionConfig          `json:"RedactionConfig,omitzero"`
	DataAccessRoleArn  *string                   `json:"DataAccessRoleArn,omitzero" validate:"required" constraint:"required,arn=iam-role"`
	JobName            *string                   `json:"JobName,omitzero" constraint:"omitempty,min=1,max=256"`
	LanguageCode       *LanguageCode             `json:"LanguageCode,omitzero" validate:"required,enum"`
	ClientRequestToken *string                   `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	Tags               []Tag                     `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
}

type StartPiiEntitiesDetectionJobOutput = StartJobOutput

// PiiEntitiesDetectionJobProperties describes one PII job
type PiiEntitiesDetectionJobProperties struct {
	JobId             *string                   `json:"JobId,omitzero"`
	JobArn            *string                   `json:"JobArn,omitzero"`
	JobName           *string                   `json:"JobName,omitzero"`
	JobStatus         *JobStatus                `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	Message           *string                   `json:"Message,omitzero"`
	SubmitTime        *shape.Timestamp          `json:"SubmitTime,omitzero"`
	EndTime           *shape.Timestamp          `json:"EndTime,omitzero"`
	InputDataConfig   *InputDataConfig          `json:"InputDataConfig,omitzero"`
	OutputDataConfig  *PiiOutputDataConfig      `json:"OutputDataConfig,omitzero"`
	RedactionConfig   *RedactionConfig          `json:"RedactionConfig,omitzero"`
	LanguageCode      *LanguageCode             `json:"LanguageCode,omitzero" validate:"omitempty,enum"`
	DataAccessRoleArn *string                   `json:"DataAccessRoleArn,omitzero"`
	Mode              *PiiEntitiesDetectionMode `json:"Mode,omitzero" validate:"omitempty,enum"`
}

type DescribePiiEntitiesDetectionJobOutput struct {
	PiiEntitiesDetectionJobProperties *PiiEntitiesDetectionJobProperties `json:"PiiEntitiesDetectionJobProperties,omitzero"`
}

type ListPiiEntitiesDetectionJobsInput struct {
	Filter     *PiiEntitiesDetectionJobFilter `json:"Filter,omitzero"`
	NextToken  *string                        `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32                         `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListPiiEntitiesDetectionJobsOutput struct {
	PiiEntitiesDetectionJobPropertiesList []PiiEntitiesDetectionJobProperties `json:"PiiEntitiesDetectionJobPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken                             *string                             `json:"NextToken,omitzero"`
}

// Topics detection

type StartTopicsDetectionJobInput struct {
	InputDataConfig    *InputDataConfig  `json:"InputDataConfig,omitzero" validate:"required"`
	OutputDataConfig   *OutputDataConfig `json:"OutputDataConfig,omitzero" validate:"required"`
	DataAccessRoleArn  *string           `json:"DataAccessRoleArn,omitzero" validate:"required" constraint:"required,arn=iam-role"`
	JobName            *string           `json:"JobName,omitzero" constraint:"omitempty,min=1,max=256"`
	NumberOfTopics     *int32            `json:"NumberOfTopics,omitzero" constraint:"omitempty,min=1,max=100"`
	ClientRequestToken *string           `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	VolumeKmsKeyId     *string           `json:"VolumeKmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	VpcConfig          *VpcConfig        `json:"VpcConfig,omitzero"`
	Tags               []Tag             `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
}

// TopicsDetectionJobProperties describes one topic modeling job
type TopicsDetectionJobProperties struct {
	JobId             *string           `json:"JobId,omitzero"`
	JobArn            *string           `json:"JobArn,omitzero"`
	JobName           *string           `json:"JobName,omitzero"`
	JobStatus         *JobStatus        `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	Message           *string           `json:"Message,omitzero"`
	SubmitTime        *shape.Timestamp  `json:"SubmitTime,omitzero"`
	EndTime           *shape.Timestamp  `json:"EndTime,omitzero"`
	InputDataConfig   *InputDataConfig  `json:"InputDataConfig,omitzero"`
	OutputDataConfig  *OutputDataConfig `json:"OutputDataConfig,omitzero"`
	NumberOfTopics    *int32            `json:"NumberOfTopics,omitzero"`
	DataAccessRoleArn *string           `json:"DataAccessRoleArn,omitzero"`
	VolumeKmsKeyId    *string           `json:"VolumeKmsKeyId,omitzero"`
	VpcConfig         *VpcConfig        `json:"VpcConfig,omitzero"`
}

type DescribeTopicsDetectionJobOutput struct {
	TopicsDetectionJobProperties *TopicsDetectionJobProperties `json:"TopicsDetectionJobProperties,omitzero"`
}

type ListTopicsDetectionJobsInput struct {
	Filter     *TopicsDetectionJobFilter `json:"Filter,omitzero"`
	NextToken  *string                   `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32                    `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListTopicsDetectionJobsOutput struct {
	TopicsDetectionJobPropertiesList []TopicsDetectionJobProperties `json:"TopicsDetectionJobPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken                        *string                        `json:"NextToken,omitzero"`
}

// Document classification

type StartDocumentClassificationJobInput struct {
	JobName               *string           `json:"JobName,omitzero" constraint:"omitempty,min=1,max=256"`
	DocumentClassifierArn *string           `json:"DocumentClassifierArn,omitzero" constraint:"omitempty,arn=document-classifier"`
	InputDataConfig       *InputDataConfig  `json:"InputDataConfig,omitzero" validate:"required"`
	OutputDataConfig      *OutputDataConfig `json:"OutputDataConfig,omitzero" validate:"required"`
	DataAccessRoleArn     *string           `json:"DataAccessRoleArn,omitzero" validate:"required" constraint:"required,arn=iam-role"`
	ClientRequestToken    *string           `json:"ClientRequestToken,omitzero" constraint:"omitempty,min=1,max=64"`
	VolumeKmsKeyId        *string           `json:"VolumeKmsKeyId,omitzero" constraint:"omitempty,max=2048"`
	VpcConfig             *VpcConfig        `json:"VpcConfig,omitzero"`
	Tags                  []Tag             `json:"Tags,omitzero" validate:"omitempty,dive" constraint:"omitempty,max=200,dive"`
	FlywheelArn           *string           `json:"FlywheelArn,omitzero" constraint:"omitempty,arn=flywheel"`
}

type StartDocumentClassificationJobOutput struct {
	JobId                 *string    `json:"JobId,omitzero"`
	JobArn                *string    `json:"JobArn,omitzero"`
	JobStatus             *JobStatus `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	DocumentClassifierArn *string    `json:"DocumentClassifierArn,omitzero"`
}

// DocumentClassificationJobProperties describes one classification job
type DocumentClassificationJobProperties struct {
	JobId                 *string           `json:"JobId,omitzero"`
	JobArn                *string           `json:"JobArn,omitzero"`
	JobName               *string           `json:"JobName,omitzero"`
	JobStatus             *JobStatus        `json:"JobStatus,omitzero" validate:"omitempty,enum"`
	Message               *string           `json:"Message,omitzero"`
	SubmitTime            *shape.Timestamp  `json:"SubmitTime,omitzero"`
	EndTime               *shape.Timestamp  `json:"EndTime,omitzero"`
	DocumentClassifierArn *string           `json:"DocumentClassifierArn,omitzero"`
	InputDataConfig       *InputDataConfig  `json:"InputDataConfig,omitzero"`
	OutputDataConfig      *OutputDataConfig `json:"OutputDataConfig,omitzero"`
	DataAccessRoleArn     *string           `json:"DataAccessRoleArn,omitzero"`
	VolumeKmsKeyId        *string           `json:"VolumeKmsKeyId,omitzero"`
	VpcConfig             *VpcConfig        `json:"VpcConfig,omitzero"`
	FlywheelArn           *string           `json:"FlywheelArn,omitzero"`
}

type DescribeDocumentClassificationJobOutput struct {
	DocumentClassificationJobProperties *DocumentClassificationJobProperties `json:"DocumentClassificationJobProperties,omitzero"`
}

type ListDocumentClassificationJobsInput struct {
	Filter     *DocumentClassificationJobFilter `json:"Filter,omitzero"`
	NextToken  *string                          `json:"NextToken,omitzero" constraint:"omitempty,min=1"`
	MaxResults *int32                           `json:"MaxResults,omitzero" constraint:"omitempty,min=1,max=500"`
}

type ListDocumentClassificationJobsOutput struct {
	DocumentClassificationJobPropertiesList []DocumentClassificationJobProperties `json:"DocumentClassificationJobPropertiesList,omitzero" validate:"omitempty,dive"`
	NextToken                               *string                               `json:"NextToken,omitzero"`
}

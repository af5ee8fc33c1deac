package domain

import (
	"strings"

	"comprehend/internal/core/enum"
)

// ServiceTargetPrefix prefixes every operation name in the X-Amz-Target header
const ServiceTargetPrefix = "Comprehend_20171127."

// Operation names one remote API call; the Input and Output shapes share its name
type Operation string

// Operation values
const (
	OpDetectDominantLanguage               Operation = "DetectDominantLanguage"
	OpDetectEntities                       Operation = "DetectEntities"
	OpDetectKeyPhrases                     Operation = "DetectKeyPhrases"
	OpDetectSentiment                      Operation = "DetectSentiment"
	OpDetectSyntax                         Operation = "DetectSyntax"
	OpDetectPiiEntities                    Operation = "DetectPiiEntities"
	OpContainsPiiEntities                  Operation = "ContainsPiiEntities"
	OpDetectToxicContent                   Operation = "DetectToxicContent"
	OpDetectTargetedSentiment              Operation = "DetectTargetedSentiment"
	OpClassifyDocument                     Operation = "ClassifyDocument"
	OpBatchDetectDominantLanguage          Operation = "BatchDetectDominantLanguage"
	OpBatchDetectEntities                  Operation = "BatchDetectEntities"
	OpBatchDetectKeyPhrases                Operation = "BatchDetectKeyPhrases"
	OpBatchDetectSentiment                 Operation = "BatchDetectSentiment"
	OpBatchDetectSyntax                    Operation = "BatchDetectSyntax"
	OpStartEntitiesDetectionJob            Operation = "StartEntitiesDetectionJob"
	OpDescribeEntitiesDetectionJob         Operation = "DescribeEntitiesDetectionJob"
	OpListEntitiesDetectionJobs            Operation = "ListEntitiesDetectionJobs"
	OpStopEntitiesDetectionJob             Operation = "StopEntitiesDetectionJob"
	OpStartSentimentDetectionJob           Operation = "StartSentimentDetectionJob"
	OpDescribeSentimentDetectionJob        Operation = "DescribeSentimentDetectionJob"
	OpListSentimentDetectionJobs           Operation = "ListSentimentDetectionJobs"
	OpStopSentimentDetectionJob            Operation = "StopSentimentDetectionJob"
	OpStartKeyPhrasesDetectionJob          Operation = "StartKeyPhrasesDetectionJob"
	OpDescribeKeyPhrasesDetectionJob       Operation = "DescribeKeyPhrasesDetectionJob"
	OpListKeyPhrasesDetectionJobs          Operation = "ListKeyPhrasesDetectionJobs"
	OpStopKeyPhrasesDetectionJob           Operation = "StopKeyPhrasesDetectionJob"
	OpStartDominantLanguageDetectionJob    Operation = "StartDominantLanguageDetectionJob"
	OpDescribeDominantLanguageDetectionJob Operation = "DescribeDominantLanguageDetectionJob"
	OpListDominantLanguageDetectionJobs    Operation = "ListDominantLanguageDetectionJobs"
	OpStopDominantLanguageDetectionJob     Operation = "StopDominantLanguageDetectionJob"
	OpStartPiiEntitiesDetectionJob         Operation = "StartPiiEntitiesDetectionJob"
	OpDescribePiiEntitiesDetectionJob      Operation = "DescribePiiEntitiesDetectionJob"
	OpListPiiEntitiesDetectionJobs         Operation = "ListPiiEntitiesDetectionJobs"
	OpStopPiiEntitiesDetectionJob          Operation = "StopPiiEntitiesDetectionJob"
	OpStartTopicsDetectionJob              Operation = "StartTopicsDetectionJob"
	OpDescribeTopicsDetectionJob           Operation = "DescribeTopicsDetectionJob"
	OpListTopicsDetectionJobs              Operation = "ListTopicsDetectionJobs"
	OpStartDocumentClassificationJob       Operation = "StartDocumentClassificationJob"
	OpDescribeDocumentClassificationJob    Operation = "DescribeDocumentClassificationJob"
	OpListDocumentClassificationJobs       Operation = "ListDocumentClassificationJobs"
	OpCreateDocumentClassifier             Operation = "CreateDocumentClassifier"
	OpDescribeDocumentClassifier           Operation = "DescribeDocumentClassifier"
	OpListDocumentClassifiers              Operation = "ListDocumentClassifiers"
	OpDeleteDocumentClassifier             Operation = "DeleteDocumentClassifier"
	OpStopTrainingDocumentClassifier       Operation = "StopTrainingDocumentClassifier"
	OpCreateEndpoint                       Operation = "CreateEndpoint"
	OpDescribeEndpoint                     Operation = "DescribeEndpoint"
	OpUpdateEndpoint                       Operation = "UpdateEndpoint"
	OpDeleteEndpoint                       Operation = "DeleteEndpoint"
	OpListEndpoints                        Operation = "ListEndpoints"
	OpDescribeFlywheel                     Operation = "DescribeFlywheel"
	OpTagResource                          Operation = "TagResource"
	OpUntagResource                        Operation = "UntagResource"
	OpListTagsForResource                  Operation = "ListTagsForResource"
)

// Values returns every Operation in catalog order
func (Operation) Values() []Operation {
	return []Operation{
		OpDetectDominantLanguage,
		OpDetectEntities,
		OpDetectKeyPhrases,
		OpDetectSentiment,
		OpDetectSyntax,
		OpDetectPiiEntities,
		OpContainsPiiEntities,
		OpDetectToxicContent,
		OpDetectTargetedSentiment,
		OpClassifyDocument,
		OpBatchDetectDominantLanguage,
		OpBatchDetectEntities,
		OpBatchDetectKeyPhrases,
		OpBatchDetectSentiment,
		OpBatchDetectSyntax,
		OpStartEntitiesDetectionJob,
		OpDescribeEntitiesDetectionJob,
		OpListEntitiesDetectionJobs,
		OpStopEntitiesDetectionJob,
		OpStartSentimentDetectionJob,
		OpDescribeSentimentDetectionJob,
		OpListSentimentDetectionJobs,
		OpStopSentimentDetectionJob,
		OpStartKeyPhrasesDetectionJob,
		OpDescribeKeyPhrasesDetectionJob,
		OpListKeyPhrasesDetectionJobs,
		OpStopKeyPhrasesDetectionJob,
		OpStartDominantLanguageDetectionJob,
		OpDescribeDominantLanguageDetectionJob,
		OpListDominantLanguageDetectionJobs,
		OpStopDominantLanguageDetectionJob,
		OpStartPiiEntitiesDetectionJob,
		OpDescribePiiEntitiesDetectionJob,
		OpListPiiEntitiesDetectionJobs,
		OpStopPiiEntitiesDetectionJob,
		OpStartTopicsDetectionJob,
		OpDescribeTopicsDetectionJob,
		OpListTopicsDetectionJobs,
		OpStartDocumentClassificationJob,
		OpDescribeDocumentClassificationJob,
		OpListDocumentClassificationJobs,
		OpCreateDocumentClassifier,
		OpDescribeDocumentClassifier,
		OpListDocumentClassifiers,
		OpDeleteDocumentClassifier,
		OpStopTrainingDocumentClassifier,
		OpCreateEndpoint,
		OpDescribeEndpoint,
		OpUpdateEndpoint,
		OpDeleteEndpoint,
		OpListEndpoints,
		OpDescribeFlywheel,
		OpTagResource,
		OpUntagResource,
		OpListTagsForResource,
	}
}

// IsKnown reports whether op is in the catalog
func (op Operation) IsKnown() bool { return enum.Known(op) }

// Target is the X-Amz-Target header value for op
func (op Operation) Target() string { return ServiceTargetPrefix + string(op) }

// OperationFromTarget parses an X-Amz-Target header value
func OperationFromTarget(target string) (Operation, error) {
	name, ok := strings.CutPrefix(target, ServiceTargetPrefix)
	if !ok {
		return "", enum.Invalid[Operation](target)
	}
	return enum.Parse[Operation](name)
}

package domain

// Shapes returns a fresh Input and Output pointer for op, e.g. (*DetectEntitiesInput, *DetectEntitiesOutput)
func Shapes(op Operation) (in, out any, ok bool) {
	newPair, ok := catalog[op]
	if !ok {
		return nil, nil, false
	}
	in, out = newPair()
	return in, out, true
}

func pair[In, Out any]() (any, any) { return new(In), new(Out) }

var catalog = map[Operation]func() (any, any){
	OpDetectDominantLanguage:               pair[DetectDominantLanguageInput, DetectDominantLanguageOutput],
	OpDetectEntities:                       pair[DetectEntitiesInput, DetectEntitiesOutput],
	OpDetectKeyPhrases:                     pair[DetectKeyPhrasesInput, DetectKeyPhrasesOutput],
	OpDetectSentiment:                      pair[DetectSentimentInput, DetectSentimentOutput],
	OpDetectSyntax:                         pair[DetectSyntaxInput, DetectSyntaxOutput],
	OpDetectPiiEntities:                    pair[DetectPiiEntitiesInput, DetectPiiEntitiesOutput],
	OpContainsPiiEntities:                  pair[ContainsPiiEntitiesInput, ContainsPiiEntitiesOutput],
	OpDetectToxicContent:                   pair[DetectToxicContentInput, DetectToxicContentOutput],
	OpDetectTargetedSentiment:              pair[DetectTargetedSentimentInput, DetectTargetedSentimentOutput],
	OpClassifyDocument:                     pair[ClassifyDocumentInput, ClassifyDocumentOutput],
	OpBatchDetectDominantLanguage:          pair[BatchDetectDominantLanguageInput, BatchDetectDominantLanguageOutput],
	OpBatchDetectEntities:                  pair[BatchDetectEntitiesInput, BatchDetectEntitiesOutput],
	OpBatchDetectKeyPhrases:                pair[BatchDetectKeyPhrasesInput, BatchDetectKeyPhrasesOutput],
	OpBatchDetectSentiment:                 pair[BatchDetectSentimentInput, BatchDetectSentimentOutput],
	OpBatchDetectSyntax:                    pair[BatchDetectSyntaxInput, BatchDetectSyntaxOutput],
	OpStartEntitiesDetectionJob:            pair[StartEntitiesDetectionJobInput, StartEntitiesDetectionJobOutput],
	OpDescribeEntitiesDetectionJob:         pair[DescribeEntitiesDetectionJobInput, DescribeEntitiesDetectionJobOutput],
	OpListEntitiesDetectionJobs:            pair[ListEntitiesDetectionJobsInput, ListEntitiesDetectionJobsOutput],
	OpStopEntitiesDetectionJob:             pair[StopEntitiesDetectionJobInput, StopEntitiesDetectionJobOutput],
	OpStartSentimentDetectionJob:           pair[StartSentimentDetectionJobInput, StartSentimentDetectionJobOutput],
	OpDescribeSentimentDetectionJob:        pair[DescribeSentimentDetectionJobInput, DescribeSentimentDetectionJobOutput],
	OpListSentimentDetectionJobs:           pair[ListSentimentDetectionJobsInput, ListSentimentDetectionJobsOutput],
	OpStopSentimentDetectionJob:            pair[StopSentimentDetectionJobInput, StopSentimentDetectionJobOutput],
	OpStartKeyPhrasesDetectionJob:          pair[StartKeyPhrasesDetectionJobInput, StartKeyPhrasesDetectionJobOutput],
	OpDescribeKeyPhrasesDetectionJob:       pair[DescribeKeyPhrasesDetectionJobInput, DescribeKeyPhrasesDetectionJobOutput],
	OpListKeyPhrasesDetectionJobs:          pair[ListKeyPhrasesDetectionJobsInput, ListKeyPhrasesDetectionJobsOutput],
	OpStopKeyPhrasesDetectionJob:           pair[StopKeyPhrasesDetectionJobInput, StopKeyPhrasesDetectionJobOutput],
	OpStartDominantLanguageDetectionJob:    pair[StartDominantLanguageDetectionJobInput, StartDominantLanguageDetectionJobOutput],
	OpDescribeDominantLanguageDetectionJob: pair[DescribeDominantLanguageDetectionJobInput, DescribeDominantLanguageDetectionJobOutput],
	OpListDominantLanguageDetectionJobs:    pair[ListDominantLanguageDetectionJobsInput, ListDominantLanguageDetectionJobsOutput],
	OpStopDominantLanguageDetectionJob:     pair[StopDominantLanguageDetectionJobInput, StopDominantLanguageDetectionJobOutput],
	OpStartPiiEntitiesDetectionJob:         pair[StartPiiEntitiesDetectionJobInput, StartPiiEntitiesDetectionJobOutput],
	OpDescribePiiEntitiesDetectionJob:      pair[DescribePiiEntitiesDetectionJobInput, DescribePiiEntitiesDetectionJobOutput],
	OpListPiiEntitiesDetectionJobs:         pair[ListPiiEntitiesDetectionJobsInput, ListPiiEntitiesDetectionJobsOutput],
	OpStopPiiEntitiesDetectionJob:          pair[StopPiiEntitiesDetectionJobInput, StopPiiEntitiesDetectionJobOutput],
	OpStartTopicsDetectionJob:              pair[StartTopicsDetectionJobInput, StartTopicsDetectionJobOutput],
	OpDescribeTopicsDetectionJob:           pair[DescribeTopicsDetectionJobInput, DescribeTopicsDetectionJobOutput],
	OpListTopicsDetectionJobs:              pair[ListTopicsDetectionJobsInput, ListTopicsDetectionJobsOutput],
	OpStartDocumentClassificationJob:       pair[StartDocumentClassificationJobInput, StartDocumentClassificationJobOutput],
	OpDescribeDocumentClassificationJob:    pair[DescribeDocumentClassificationJobInput, DescribeDocumentClassificationJobOutput],
	OpListDocumentClassificationJobs:       pair[ListDocumentClassificationJobsInput, ListDocumentClassificationJobsOutput],
	OpCreateDocumentClassifier:             pair[CreateDocumentClassifierInput, CreateDocumentClassifierOutput],
	OpDescribeDocumentClassifier:           pair[DescribeDocumentClassifierInput, DescribeDocumentClassifierOutput],
	OpListDocumentClassifiers:              pair[ListDocumentClassifiersInput, ListDocumentClassifiersOutput],
	OpDeleteDocumentClassifier:             pair[DeleteDocumentClassifierInput, DeleteDocumentClassifierOutput],
	OpStopTrainingDocumentClassifier:       pair[StopTrainingDocumentClassifierInput, StopTrainingDocumentClassifierOutput],
	OpCreateEndpoint:                       pair[CreateEndpointInput, CreateEndpointOutput],
	OpDescribeEndpoint:                     pair[DescribeEndpointInput, DescribeEndpointOutput],
	OpUpdateEndpoint:                       pair[UpdateEndpointInput, UpdateEndpointOutput],
	OpDeleteEndpoint:                       pair[DeleteEndpointInput, DeleteEndpointOutput],
	OpListEndpoints:                        pair[ListEndpointsInput, ListEndpointsOutput],
	OpDescribeFlywheel:                     pair[DescribeFlywheelInput, DescribeFlywheelOutput],
	OpTagResource:                          pair[TagResourceInput, TagResourceOutput],
	OpUntagResource:                        pair[UntagResourceInput, UntagResourceOutput],
	OpListTagsForResource:                  pair[ListTagsForResourceInput, ListTagsForResourceOutput],
}

package service

import (
	"context"

	"comprehend/internal/services/comprehend/domain"
)

// Real-time analysis

// DetectDominantLanguage ranks the languages of a document
func (c *Client) DetectDominantLanguage(ctx context.Context, in *domain.DetectDominantLanguageInput) (*domain.DetectDominantLanguageOutput, error) {
	return invoke[domain.DetectDominantLanguageOutput](ctx, c, domain.OpDetectDominantLanguage, in)
}

// DetectEntities finds named entities, or runs a custom recognizer endpoint when EndpointArn is set
func (c *Client) DetectEntities(ctx context.Context, in *domain.DetectEntitiesInput) (*domain.DetectEntitiesOutput, error) {
	return invoke[domain.DetectEntitiesOutput](ctx, c, domain.OpDetectEntities, in)
}

func (c *Client) DetectKeyPhrases(ctx context.Context, in *domain.DetectKeyPhrasesInput) (*domain.DetectKeyPhrasesOutput, error) {
	return invoke[domain.DetectKeyPhrasesOutput](ctx, c, domain.OpDetectKeyPhrases, in)
}

func (c *Client) DetectSentiment(ctx context.Context, in *domain.DetectSentimentInput) (*domain.DetectSentimentOutput, error) {
	return invoke[domain.DetectSentimentOutput](ctx, c, domain.OpDetectSentiment, in)
}

func (c *Client) DetectSyntax(ctx context.Context, in *domain.DetectSyntaxInput) (*domain.DetectSyntaxOutput, error) {
	return invoke[domain.DetectSyntaxOutput](ctx, c, domain.OpDetectSyntax, in)
}

// DetectPiiEntities locates personally identifiable information
func (c *Client) DetectPiiEntities(ctx context.Context, in *domain.DetectPiiEntitiesInput) (*domain.DetectPiiEntitiesOutput, error) {
	return invoke[domain.DetectPiiEntitiesOutput](ctx, c, domain.OpDetectPiiEntities, in)
}

// ContainsPiiEntities reports which PII categories occur, without offsets
func (c *Client) ContainsPiiEntities(ctx context.Context, in *domain.ContainsPiiEntitiesInput) (*domain.ContainsPiiEntitiesOutput, error) {
	return invoke[domain.ContainsPiiEntitiesOutput](ctx, c, domain.OpContainsPiiEntities, in)
}

// DetectToxicContent scores each segment for toxicity
func (c *Client) DetectToxicContent(ctx context.Context, in *domain.DetectToxicContentInput) (*domain.DetectToxicContentOutput, error) {
	return invoke[domain.DetectToxicContentOutput](ctx, c, domain.OpDetectToxicContent, in)
}

func (c *Client) DetectTargetedSentiment(ctx context.Context, in *domain.DetectTargetedSentimentInput) (*domain.DetectTargetedSentimentOutput, error) {
	return invoke[domain.DetectTargetedSentimentOutput](ctx, c, domain.OpDetectTargetedSentiment, in)
}

// ClassifyDocument runs a custom classifier endpoint over text or a document
func (c *Client) ClassifyDocument(ctx context.Context, in *domain.ClassifyDocumentInput) (*domain.ClassifyDocumentOutput, error) {
	return invoke[domain.ClassifyDocumentOutput](ctx, c, domain.OpClassifyDocument, in)
}

// Batch analysis

func (c *Client) BatchDetectDominantLanguage(ctx context.Context, in *domain.BatchDetectDominantLanguageInput) (*domain.BatchDetectDominantLanguageOutput, error) {
	return invoke[domain.BatchDetectDominantLanguageOutput](ctx, c, domain.OpBatchDetectDominantLanguage, in)
}

func (c *Client) BatchDetectEntities(ctx context.Context, in *domain.BatchDetectEntitiesInput) (*domain.BatchDetectEntitiesOutput, error) {
	return invoke[domain.BatchDetectEntitiesOutput](ctx, c, domain.OpBatchDetectEntities, in)
}

func (c *Client) BatchDetectKeyPhrases(ctx context.Context, in *domain.BatchDetectKeyPhrasesInput) (*domain.BatchDetectKeyPhrasesOutput, error) {
	return invoke[domain.BatchDetectKeyPhrasesOutput](ctx, c, domain.OpBatchDetectKeyPhrases, in)
}

// BatchDetectSentiment scores up to 25 documents; failed documents come back in ErrorList
func (c *Client) BatchDetectSentiment(ctx context.Context, in *domain.BatchDetectSentimentInput) (*domain.BatchDetectSentimentOutput, error) {
	return invoke[domain.BatchDetectSentimentOutput](ctx, c, domain.OpBatchDetectSentiment, in)
}

func (c *Client) BatchDetectSyntax(ctx context.Context, in *domain.BatchDetectSyntaxInput) (*domain.BatchDetectSyntaxOutput, error) {
	return invoke[domain.BatchDetectSyntaxOutput](ctx, c, domain.OpBatchDetectSyntax, in)
}

// Asynchronous jobs

func (c *Client) StartEntitiesDetectionJob(ctx context.Context, in *domain.StartEntitiesDetectionJobInput) (*domain.StartEntitiesDetectionJobOutput, error) {
	return invoke[domain.StartEntitiesDetectionJobOutput](ctx, c, domain.OpStartEntitiesDetectionJob, in)
}

func (c *Client) DescribeEntitiesDetectionJob(ctx context.Context, in *domain.DescribeEntitiesDetectionJobInput) (*domain.DescribeEntitiesDetectionJobOutput, error) {
	return invoke[domain.DescribeEntitiesDetectionJobOutput](ctx, c, domain.OpDescribeEntitiesDetectionJob, in)
}

func (c *Client) ListEntitiesDetectionJobs(ctx context.Context, in *domain.ListEntitiesDetectionJobsInput) (*domain.ListEntitiesDetectionJobsOutput, error) {
	return invoke[domain.ListEntitiesDetectionJobsOutput](ctx, c, domain.OpListEntitiesDetectionJobs, in)
}

func (c *Client) StopEntitiesDetectionJob(ctx context.Context, in *domain.StopEntitiesDetectionJobInput) (*domain.StopEntitiesDetectionJobOutput, error) {
	return invoke[domain.StopEntitiesDetectionJobOutput](ctx, c, domain.OpStopEntitiesDetectionJob, in)
}

func (c *Client) StartSentimentDetectionJob(ctx context.Context, in *domain.StartSentimentDetectionJobInput) (*domain.StartSentimentDetectionJobOutput, error) {
	return invoke[domain.StartSentimentDetectionJobOutput](ctx, c, domain.OpStartSentimentDetectionJob, in)
}

func (c *Client) DescribeSentimentDetectionJob(ctx context.Context, in *domain.DescribeSentimentDetectionJobInput) (*domain.DescribeSentimentDetectionJobOutput, error) {
	return invoke[domain.DescribeSentimentDetectionJobOutput](ctx, c, domain.OpDescribeSentimentDetectionJob, in)
}

func (c *Client) ListSentimentDetectionJobs(ctx context.Context, in *domain.ListSentimentDetectionJobsInput) (*domain.ListSentimentDetectionJobsOutput, error) {
	return invoke[domain.ListSentimentDetectionJobsOutput](ctx, c, domain.OpListSentimentDetectionJobs, in)
}

func (c *Client) StopSentimentDetectionJob(ctx context.Context, in *domain.StopSentimentDetectionJobInput) (*domain.StopSentimentDetectionJobOutput, error) {
	return invoke[domain.StopSentimentDetectionJobOutput](ctx, c, domain.OpStopSentimentDetectionJob, in)
}

func (c *Client) StartKeyPhrasesDetectionJob(ctx context.Context, in *domain.StartKeyPhrasesDetectionJobInput) (*domain.StartKeyPhrasesDetectionJobOutput, error) {
	return invoke[domain.StartKeyPhrasesDetectionJobOutput](ctx, c, domain.OpStartKeyPhrasesDetectionJob, in)
}

func (c *Client) DescribeKeyPhrasesDetectionJob(ctx context.Context, in *domain.DescribeKeyPhrasesDetectionJobInput) (*domain.DescribeKeyPhrasesDetectionJobOutput, error) {
	return invoke[domain.DescribeKeyPhrasesDetectionJobOutput](ctx, c, domain.OpDescribeKeyPhrasesDetectionJob, in)
}

func (c *Client) ListKeyPhrasesDetectionJobs(ctx context.Context, in *domain.ListKeyPhrasesDetectionJobsInput) (*domain.ListKeyPhrasesDetectionJobsOutput, error) {
	return invoke[domain.ListKeyPhrasesDetectionJobsOutput](ctx, c, domain.OpListKeyPhrasesDetectionJobs, in)
}

func (c *Client) StopKeyPhrasesDetectionJob(ctx context.Context, in *domain.StopKeyPhrasesDetectionJobInput) (*domain.StopKeyPhrasesDetectionJobOutput, error) {
	return invoke[domain.StopKeyPhrasesDetectionJobOutput](ctx, c, domain.OpStopKeyPhrasesDetectionJob, in)
}

func (c *Client) StartDominantLanguageDetectionJob(ctx context.Context, in *domain.StartDominantLanguageDetectionJobInput) (*domain.StartDominantLanguageDetectionJobOutput, error) {
	return invoke[domain.StartDominantLanguageDetectionJobOutput](ctx, c, domain.OpStartDominantLanguageDetectionJob, in)
}

func (c *Client) DescribeDominantLanguageDetectionJob(ctx context.Context, in *domain.DescribeDominantLanguageDetectionJobInput) (*domain.DescribeDominantLanguageDetectionJobOutput, error) {
	return invoke[domain.DescribeDominantLanguageDetectionJobOutput](ctx, c, domain.OpDescribeDominantLanguageDetectionJob, in)
}

func (c *Client) ListDominantLanguageDetectionJobs(ctx context.Context, in *domain.ListDominantLanguageDetectionJobsInput) (*domain.ListDominantLanguageDetectionJobsOutput, error) {
	return invoke[domain.ListDominantLanguageDetectionJobsOutput](ctx, c, domain.OpListDominantLanguageDetectionJobs, in)
}

func (c *Client) StopDominantLanguageDetectionJob(ctx context.Context, in *domain.StopDominantLanguageDetectionJobInput) (*domain.StopDominantLanguageDetectionJobOutput, error) {
	return invoke[domain.StopDominantLanguageDetectionJobOutput](ctx, c, domain.OpStopDominantLanguageDetectionJob, in)
}

// StartPiiEntitiesDetectionJob fills ClientRequestToken when it is nil
func (c *Client) StartPiiEntitiesDetectionJob(ctx context.Context, in *domain.StartPiiEntitiesDetectionJobInput) (*domain.StartPiiEntitiesDetectionJobOutput, error) {
	return invoke[domain.StartPiiEntitiesDetectionJobOutput](ctx, c, domain.OpStartPiiEntitiesDetectionJob, in)
}

func (c *Client) DescribePiiEntitiesDetectionJob(ctx context.Context, in *domain.DescribePiiEntitiesDetectionJobInput) (*domain.DescribePiiEntitiesDetectionJobOutput, error) {
	return invoke[domain.DescribePiiEntitiesDetectionJobOutput](ctx, c, domain.OpDescribePiiEntitiesDetectionJob, in)
}

func (c *Client) ListPiiEntitiesDetectionJobs(ctx context.Context, in *domain.ListPiiEntitiesDetectionJobsInput) (*domain.ListPiiEntitiesDetectionJobsOutput, error) {
	return invoke[domain.ListPiiEntitiesDetectionJobsOutput](ctx, c, domain.OpListPiiEntitiesDetectionJobs, in)
}

func (c *Client) StopPiiEntitiesDetectionJob(ctx context.Context, in *domain.StopPiiEntitiesDetectionJobInput) (*domain.StopPiiEntitiesDetectionJobOutput, error) {
	return invoke[domain.StopPiiEntitiesDetectionJobOutput](ctx, c, domain.OpStopPiiEntitiesDetectionJob, in)
}

func (c *Client) StartTopicsDetectionJob(ctx context.Context, in *domain.StartTopicsDetectionJobInput) (*domain.StartTopicsDetectionJobOutput, error) {
	return invoke[domain.StartTopicsDetectionJobOutput](ctx, c, domain.OpStartTopicsDetectionJob, in)
}

func (c *Client) DescribeTopicsDetectionJob(ctx context.Context, in *domain.DescribeTopicsDetectionJobInput) (*domain.DescribeTopicsDetectionJobOutput, error) {
	return invoke[domain.DescribeTopicsDetectionJobOutput](ctx, c, domain.OpDescribeTopicsDetectionJob, in)
}

func (c *Client) ListTopicsDetectionJobs(ctx context.Context, in *domain.ListTopicsDetectionJobsInput) (*domain.ListTopicsDetectionJobsOutput, error) {
	return invoke[domain.ListTopicsDetectionJobsOutput](ctx, c, domain.OpListTopicsDetectionJobs, in)
}

func (c *Client) StartDocumentClassificationJob(ctx context.Context, in *domain.StartDocumentClassificationJobInput) (*domain.StartDocumentClassificationJobOutput, error) {
	return invoke[domain.StartDocumentClassificationJobOutput](ctx, c, domain.OpStartDocumentClassificationJob, in)
}

func (c *Client) DescribeDocumentClassificationJob(ctx context.Context, in *domain.DescribeDocumentClassificationJobInput) (*domain.DescribeDocumentClassificationJobOutput, error) {
	return invoke[domain.DescribeDocumentClassificationJobOutput](ctx, c, domain.OpDescribeDocumentClassificationJob, in)
}

func (c *Client) ListDocumentClassificationJobs(ctx context.Context, in *domain.ListDocumentClassificationJobsInput) (*domain.ListDocumentClassificationJobsOutput, error) {
	return invoke[domain.ListDocumentClassificationJobsOutput](ctx, c, domain.OpListDocumentClassificationJobs, in)
}

// Classifiers

func (c *Client) CreateDocumentClassifier(ctx context.Context, in *domain.CreateDocumentClassifierInput) (*domain.CreateDocumentClassifierOutput, error) {
	return invoke[domain.CreateDocumentClassifierOutput](ctx, c, domain.OpCreateDocumentClassifier, in)
}

func (c *Client) DescribeDocumentClassifier(ctx context.Context, in *domain.DescribeDocumentClassifierInput) (*domain.DescribeDocumentClassifierOutput, error) {
	return invoke[domain.DescribeDocumentClassifierOutput](ctx, c, domain.OpDescribeDocumentClassifier, in)
}

func (c *Client) ListDocumentClassifiers(ctx context.Context, in *domain.ListDocumentClassifiersInput) (*domain.ListDocumentClassifiersOutput, error) {
	return invoke[domain.ListDocumentClassifiersOutput](ctx, c, domain.OpListDocumentClassifiers, in)
}

func (c *Client) DeleteDocumentClassifier(ctx context.Context, in *domain.DeleteDocumentClassifierInput) (*domain.DeleteDocumentClassifierOutput, error) {
	return invoke[domain.DeleteDocumentClassifierOutput](ctx, c, domain.OpDeleteDocumentClassifier, in)
}

func (c *Client) StopTrainingDocumentClassifier(ctx context.Context, in *domain.StopTrainingDocumentClassifierInput) (*domain.StopTrainingDocumentClassifierOutput, error) {
	return invoke[domain.StopTrainingDocumentClassifierOutput](ctx, c, domain.OpStopTrainingDocumentClassifier, in)
}

// Endpoints

func (c *Client) CreateEndpoint(ctx context.Context, in *domain.CreateEndpointInput) (*domain.CreateEndpointOutput, error) {
	return invoke[domain.CreateEndpointOutput](ctx, c, domain.OpCreateEndpoint, in)
}

func (c *Client) DescribeEndpoint(ctx context.Context, in *domain.DescribeEndpointInput) (*domain.DescribeEndpointOutput, error) {
	return invoke[domain.DescribeEndpointOutput](ctx, c, domain.OpDescribeEndpoint, in)
}

func (c *Client) UpdateEndpoint(ctx context.Context, in *domain.UpdateEndpointInput) (*domain.UpdateEndpointOutput, error) {
	return invoke[domain.UpdateEndpointOutput](ctx, c, domain.OpUpdateEndpoint, in)
}

func (c *Client) DeleteEndpoint(ctx context.Context, in *domain.DeleteEndpointInput) (*domain.DeleteEndpointOutput, error) {
	return invoke[domain.DeleteEndpointOutput](ctx, c, domain.OpDeleteEndpoint, in)
}

// ListEndpoints pages with NextToken; nothing here follows pages automatically
func (c *Client) ListEndpoints(ctx context.Context, in *domain.ListEndpointsInput) (*domain.ListEndpointsOutput, error) {
	return invoke[domain.ListEndpointsOutput](ctx, c, domain.OpListEndpoints, in)
}

// Flywheels

// DescribeFlywheel returns flywheel properties; task and security configuration stay raw JSON
func (c *Client) DescribeFlywheel(ctx context.Context, in *domain.DescribeFlywheelInput) (*domain.DescribeFlywheelOutput, error) {
	return invoke[domain.DescribeFlywheelOutput](ctx, c, domain.OpDescribeFlywheel, in)
}

// Tagging

func (c *Client) TagResource(ctx context.Context, in *domain.TagResourceInput) (*domain.TagResourceOutput, error) {
	return invoke[domain.TagResourceOutput](ctx, c, domain.OpTagResource, in)
}

func (c *Client) UntagResource(ctx context.Context, in *domain.UntagResourceInput) (*domain.UntagResourceOutput, error) {
	return invoke[domain.UntagResourceOutput](ctx, c, domain.OpUntagResource, in)
}

func (c *Client) ListTagsForResource(ctx context.Context, in *domain.ListTagsForResourceInput) (*domain.ListTagsForResourceOutput, error) {
	return invoke[domain.ListTagsForResourceOutput](ctx, c, domain.OpListTagsForResource, in)
}

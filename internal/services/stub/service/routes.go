package service

import (
	"context"

	cdom "comprehend/internal/services/comprehend/domain"
)

func (s *Service) routes() map[cdom.Operation]handler {
	return map[cdom.Operation]handler{
		cdom.OpDetectDominantLanguage:  handle(s.detectDominantLanguage),
		cdom.OpDetectEntities:          handle(s.detectEntities),
		cdom.OpDetectKeyPhrases:        handle(s.detectKeyPhrases),
		cdom.OpDetectSentiment:         handle(s.detectSentiment),
		cdom.OpDetectSyntax:            handle(s.detectSyntax),
		cdom.OpDetectPiiEntities:       handle(s.detectPiiEntities),
		cdom.OpContainsPiiEntities:     handle(s.containsPiiEntities),
		cdom.OpDetectToxicContent:      handle(s.detectToxicContent),
		cdom.OpDetectTargetedSentiment: handle(s.detectTargetedSentiment),
		cdom.OpClassifyDocument:        handle(s.classifyDocument),

		cdom.OpBatchDetectDominantLanguage: handle(s.batchDetectDominantLanguage),
		cdom.OpBatchDetectEntities:         handle(s.batchDetectEntities),
		cdom.OpBatchDetectKeyPhrases:       handle(s.batchDetectKeyPhrases),
		cdom.OpBatchDetectSentiment:        handle(s.batchDetectSentiment),
		cdom.OpBatchDetectSyntax:           handle(s.batchDetectSyntax),

		cdom.OpStartEntitiesDetectionJob: handle(s.startEntitiesDetectionJob),
		cdom.OpDescribeEntitiesDetectionJob: handle(func(ctx context.Context, in *cdom.DescribeJobInput) (*cdom.DescribeEntitiesDetectionJobOutput, error) {
			p, err := describeJob[cdom.EntitiesDetectionJobProperties](ctx, s, famEntities, in)
			if err != nil {
				return nil, err
			}
			return &cdom.DescribeEntitiesDetectionJobOutput{EntitiesDetectionJobProperties: p}, nil
		}),
		cdom.OpListEntitiesDetectionJobs: handle(func(ctx context.Context, in *cdom.ListEntitiesDetectionJobsInput) (*cdom.ListEntitiesDetectionJobsOutput, error) {
			l, next, err := listJobs[cdom.EntitiesDetectionJobProperties](ctx, s, famEntities, in.Filter, listArgs{in.NextToken, in.MaxResults})
			if err != nil {
				return nil, err
			}
			return &cdom.ListEntitiesDetectionJobsOutput{EntitiesDetectionJobPropertiesList: l, NextToken: next}, nil
		}),
		cdom.OpStopEntitiesDetectionJob: s.stopHandler(famEntities),

		cdom.OpStartSentimentDetectionJob: handle(s.startSentimentDetectionJob),
		cdom.OpDescribeSentimentDetectionJob: handle(func(ctx context.Context, in *cdom.DescribeJobInput) (*cdom.DescribeSentimentDetectionJobOutput, error) {
			p, err := describeJob[cdom.SentimentDetectionJobProperties](ctx, s, famSentiment, in)
			if err != nil {
				return nil, err
			}
			return &cdom.DescribeSentimentDetectionJobOutput{SentimentDetectionJobProperties: p}, nil
		}),
		cdom.OpListSentimentDetectionJobs: handle(func(ctx context.Context, in *cdom.ListSentimentDetectionJobsInput) (*cdom.ListSentimentDetectionJobsOutput, error) {
			l, next, err := listJobs[cdom.SentimentDetectionJobProperties](ctx, s, famSentiment, in.Filter, listArgs{in.NextToken, in.MaxResults})
			if err != nil {
				return nil, err
			}
			return &cdom.ListSentimentDetectionJobsOutput{SentimentDetectionJobPropertiesList: l, NextToken: next}, nil
		}),
		cdom.OpStopSentimentDetectionJob: s.stopHandler(famSentiment),

		cdom.OpStartKeyPhrasesDetectionJob: handle(s.startKeyPhrasesDetectionJob),
		cdom.OpDescribeKeyPhrasesDetectionJob: handle(func(ctx context.Context, in *cdom.DescribeJobInput) (*cdom.DescribeKeyPhrasesDetectionJobOutput, error) {
			p, err := describeJob[cdom.KeyPhrasesDetectionJobProperties](ctx, s, famKeyPhrases, in)
			if err != nil {
				return nil, err
			}
			return &cdom.DescribeKeyPhrasesDetectionJobOutput{KeyPhrasesDetectionJobProperties: p}, nil
		}),
		cdom.OpListKeyPhrasesDetectionJobs: handle(func(ctx context.Context, in *cdom.ListKeyPhrasesDetectionJobsInput) (*cdom.ListKeyPhrasesDetectionJobsOutput, error) {
			l, next, err := listJobs[cdom.KeyPhrasesDetectionJobProperties](ctx, s, famKeyPhrases, in.Filter, listArgs{in.NextToken, in.MaxResults})
			if err != nil {
				return nil, err
			}
			return &cdom.ListKeyPhrasesDetectionJobsOutput{KeyPhrasesDetectionJobPropertiesList: l, NextToken: next}, nil
		}),
		cdom.OpStopKeyPhrasesDetectionJob: s.stopHandler(famKeyPhrases),

		cdom.OpStartDominantLanguageDetectionJob: handle(s.startDominantLanguageDetectionJob),
		cdom.OpDescribeDominantLanguageDetectionJob: handle(func(ctx context.Context, in *cdom.DescribeJobInput) (*cdom.DescribeDominantLanguageDetectionJobOutput, error) {
			p, err := describeJob[cdom.DominantLanguageDetectionJobProperties](ctx, s, famDominantLanguage, in)
			if err != nil {
				return nil, err
			}
			return &cdom.DescribeDominantLanguageDetectionJobOutput{DominantLanguageDetectionJobProperties: p}, nil
		}),
		cdom.OpListDominantLanguageDetectionJobs: handle(func(ctx context.Context, in *cdom.ListDominantLanguageDetectionJobsInput) (*cdom.ListDominantLanguageDetectionJobsOutput, error) {
			l, next, err := listJobs[cdom.DominantLanguageDetectionJobProperties](ctx, s, famDominantLanguage, in.Filter, listArgs{in.NextToken, in.MaxResults})
			if err != nil {
				return nil, err
			}
			return &cdom.ListDominantLanguageDetectionJobsOutput{DominantLanguageDetectionJobPropertiesList: l, NextToken: next}, nil
		}),
		cdom.OpStopDominantLanguageDetectionJob: s.stopHandler(famDominantLanguage),

		cdom.OpStartPiiEntitiesDetectionJob: handle(s.startPiiEntitiesDetectionJob),
		cdom.OpDescribePiiEntitiesDetectionJob: handle(func(ctx context.Context, in *cdom.DescribeJobInput) (*cdom.DescribePiiEntitiesDetectionJobOutput, error) {
			p, err := describeJob[cdom.PiiEntitiesDetectionJobProperties](ctx, s, famPiiEntities, in)
			if err != nil {
				return nil, err
			}
			return &cdom.DescribePiiEntitiesDetectionJobOutput{PiiEntitiesDetectionJobProperties: p}, nil
		}),
		cdom.OpListPiiEntitiesDetectionJobs: handle(func(ctx context.Context, in *cdom.ListPiiEntitiesDetectionJobsInput) (*cdom.ListPiiEntitiesDetectionJobsOutput, error) {
			l, next, err := listJobs[cdom.PiiEntitiesDetectionJobProperties](ctx, s, famPiiEntities, in.Filter, listArgs{in.NextToken, in.MaxResults})
			if err != nil {
				return nil, err
			}
			return &cdom.ListPiiEntitiesDetectionJobsOutput{PiiEntitiesDetectionJobPropertiesList: l, NextToken: next}, nil
		}),
		cdom.OpStopPiiEntitiesDetectionJob: s.stopHandler(famPiiEntities),

		cdom.OpStartTopicsDetectionJob: handle(s.startTopicsDetectionJob),
		cdom.OpDescribeTopicsDetectionJob: handle(func(ctx context.Context, in *cdom.DescribeJobInput) (*cdom.DescribeTopicsDetectionJobOutput, error) {
			p, err := describeJob[cdom.TopicsDetectionJobProperties](ctx, s, famTopics, in)
			if err != nil {
				return nil, err
			}
			return &cdom.DescribeTopicsDetectionJobOutput{TopicsDetectionJobProperties: p}, nil
		}),
		cdom.OpListTopicsDetectionJobs: handle(func(ctx context.Context, in *cdom.ListTopicsDetectionJobsInput) (*cdom.ListTopicsDetectionJobsOutput, error) {
			l, next, err := listJobs[cdom.TopicsDetectionJobProperties](ctx, s, famTopics, in.Filter, listArgs{in.NextToken, in.MaxResults})
			if err != nil {
				return nil, err
			}
			return &cdom.ListTopicsDetectionJobsOutput{TopicsDetectionJobPropertiesList: l, NextToken: next}, nil
		}),

		cdom.OpStartDocumentClassificationJob: handle(s.startDocumentClassificationJob),
		cdom.OpDescribeDocumentClassificationJob: handle(func(ctx context.Context, in *cdom.DescribeJobInput) (*cdom.DescribeDocumentClassificationJobOutput, error) {
			p, err := describeJob[cdom.DocumentClassificationJobProperties](ctx, s, famClassification, in)
			if err != nil {
				return nil, err
			}
			return &cdom.DescribeDocumentClassificationJobOutput{DocumentClassificationJobProperties: p}, nil
		}),
		cdom.OpListDocumentClassificationJobs: handle(func(ctx context.Context, in *cdom.ListDocumentClassificationJobsInput) (*cdom.ListDocumentClassificationJobsOutput, error) {
			l, next, err := listJobs[cdom.DocumentClassificationJobProperties](ctx, s, famClassification, in.Filter, listArgs{in.NextToken, in.MaxResults})
			if err != nil {
				return nil, err
			}
			return &cdom.ListDocumentClassificationJobsOutput{DocumentClassificationJobPropertiesList: l, NextToken: next}, nil
		}),

		cdom.OpCreateDocumentClassifier:       handle(s.createDocumentClassifier),
		cdom.OpDescribeDocumentClassifier:     handle(s.describeDocumentClassifier),
		cdom.OpListDocumentClassifiers:        handle(s.listDocumentClassifiers),
		cdom.OpDeleteDocumentClassifier:       handle(s.deleteDocumentClassifier),
		cdom.OpStopTrainingDocumentClassifier: handle(s.stopTrainingDocumentClassifier),

		cdom.OpCreateEndpoint:   handle(s.createEndpoint),
		cdom.OpDescribeEndpoint: handle(s.describeEndpoint),
		cdom.OpUpdateEndpoint:   handle(s.updateEndpoint),
		cdom.OpDeleteEndpoint:   handle(s.deleteEndpoint),
		cdom.OpListEndpoints:    handle(s.listEndpoints),

		cdom.OpDescribeFlywheel: handle(s.describeFlywheel),

		cdom.OpTagResource:         handle(s.tagResource),
		cdom.OpUntagResource:       handle(s.untagResource),
		cdom.OpListTagsForResource: handle(s.listTagsForResource),
	}
}

func (s *Service) stopHandler(fam family) handler {
	return handle(func(ctx context.Context, in *cdom.StopJobInput) (*cdom.StopJobOutput, error) {
		return s.stopJob(ctx, fam, in)
	})
}

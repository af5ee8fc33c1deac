package service

import (
	"context"
	"strings"
	"sync"

	"comprehend/internal/core/langhint"
	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
)

const batchItemInvalid = "INVALID_REQUEST"

// fanOut runs fn over every document on the worker pool. Results keep document order;
// documents fn rejects go to the error list instead
func fanOut[R any](ctx context.Context, workers int, docs []string, fn func(i int32, text string) (R, string)) ([]R, []cdom.BatchItemError) {
	type slot struct {
		res    R
		reason string
	}
	slots := make([]slot, len(docs))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, text := range docs {
		if ctx.Err() != nil {
			slots[i].reason = "request canceled"
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, text string) {
			defer func() { <-sem; wg.Done() }()
			if strings.TrimSpace(text) == "" {
				slots[i].reason = "document is empty"
				return
			}
			slots[i].res, slots[i].reason = fn(int32(i), text)
		}(i, text)
	}
	wg.Wait()

	results := make([]R, 0, len(docs))
	errs := make([]cdom.BatchItemError, 0)
	for i, sl := range slots {
		if sl.reason != "" {
			errs = append(errs, cdom.BatchItemError{
				Index:        ptr.To(int32(i)),
				ErrorCode:    ptr.To(batchItemInvalid),
				ErrorMessage: ptr.To(sl.reason),
			})
			continue
		}
		results = append(results, sl.res)
	}
	return results, errs
}

func (s *Service) batchDetectDominantLanguage(ctx context.Context, in *cdom.BatchDetectDominantLanguageInput) (*cdom.BatchDetectDominantLanguageOutput, error) {
	res, errs := fanOut(ctx, s.Cfg.Workers, in.TextList, func(i int32, text string) (cdom.BatchDetectDominantLanguageItemResult, string) {
		if _, letters := langhint.Script(text); letters == 0 {
			return cdom.BatchDetectDominantLanguageItemResult{}, "document has no letters to detect a language from"
		}
		return cdom.BatchDetectDominantLanguageItemResult{Index: ptr.To(i), Languages: s.Engine.DominantLanguage(text)}, ""
	})
	return &cdom.BatchDetectDominantLanguageOutput{ResultList: res, ErrorList: errs}, nil
}

func (s *Service) batchDetectEntities(ctx context.Context, in *cdom.BatchDetectEntitiesInput) (*cdom.BatchDetectEntitiesOutput, error) {
	res, errs := fanOut(ctx, s.Cfg.Workers, in.TextList, func(i int32, text string) (cdom.BatchDetectEntitiesItemResult, string) {
		return cdom.BatchDetectEntitiesItemResult{Index: ptr.To(i), Entities: s.Engine.Entities(text)}, ""
	})
	return &cdom.BatchDetectEntitiesOutput{ResultList: res, ErrorList: errs}, nil
}

func (s *Service) batchDetectKeyPhrases(ctx context.Context, in *cdom.BatchDetectKeyPhrasesInput) (*cdom.BatchDetectKeyPhrasesOutput, error) {
	res, errs := fanOut(ctx, s.Cfg.Workers, in.TextList, func(i int32, text string) (cdom.BatchDetectKeyPhrasesItemResult, string) {
		return cdom.BatchDetectKeyPhrasesItemResult{Index: ptr.To(i), KeyPhrases: s.Engine.KeyPhrases(text, *in.LanguageCode)}, ""
	})
	return &cdom.BatchDetectKeyPhrasesOutput{ResultList: res, ErrorList: errs}, nil
}

func (s *Service) batchDetectSentiment(ctx context.Context, in *cdom.BatchDetectSentimentInput) (*cdom.BatchDetectSentimentOutput, error) {
	res, errs := fanOut(ctx, s.Cfg.Workers, in.TextList, func(i int32, text string) (cdom.BatchDetectSentimentItemResult, string) {
		st, sc := s.Engine.Sentiment(text)
		return cdom.BatchDetectSentimentItemResult{Index: ptr.To(i), Sentiment: &st, SentimentScore: &sc}, ""
	})
	return &cdom.BatchDetectSentimentOutput{ResultList: res, ErrorList: errs}, nil
}

func (s *Service) batchDetectSyntax(ctx context.Context, in *cdom.BatchDetectSyntaxInput) (*cdom.BatchDetectSyntaxOutput, error) {
	res, errs := fanOut(ctx, s.Cfg.Workers, in.TextList, func(i int32, text string) (cdom.BatchDetectSyntaxItemResult, string) {
		return cdom.BatchDetectSyntaxItemResult{Index: ptr.To(i), SyntaxTokens: s.Engine.Syntax(text)}, ""
	})
	return &cdom.BatchDetectSyntaxOutput{ResultList: res, ErrorList: errs}, nil
}

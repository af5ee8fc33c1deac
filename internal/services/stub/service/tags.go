package service

import (
	"context"
	"maps"
	"slices"

	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/stub/domain"
)

func (s *Service) taggable(ctx context.Context, arn string) (domain.Record, error) {
	r, err := s.Store.ByARN(ctx, arn)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.Record{}, fault(cdom.ErrorKindResourceNotFound, "resource %s not found", arn)
	}
	return r, err
}

func (s *Service) tagResource(ctx context.Context, in *cdom.TagResourceInput) (*cdom.TagResourceOutput, error) {
	r, err := s.taggable(ctx, *in.ResourceArn)
	if err != nil {
		return nil, err
	}
	merged := maps.Clone(r.Tags)
	if merged == nil {
		merged = map[string]string{}
	}
	maps.Copy(merged, tagMap(in.Tags))
	if len(merged) > maxTagsPerTarget {
		return nil, fault(cdom.ErrorKindTooManyTags, "resource %s would carry %d tags, more than %d", r.ARN, len(merged), maxTagsPerTarget)
	}
	r.Tags = merged
	if err := s.Store.Put(ctx, r); err != nil {
		return nil, err
	}
	return &cdom.TagResourceOutput{}, nil
}

func (s *Service) untagResource(ctx context.Context, in *cdom.UntagResourceInput) (*cdom.UntagResourceOutput, error) {
	r, err := s.taggable(ctx, *in.ResourceArn)
	if err != nil {
		return nil, err
	}
	kept := maps.Clone(r.Tags)
	for _, k := range in.TagKeys {
		delete(kept, k)
	}
	r.Tags = kept
	if err := s.Store.Put(ctx, r); err != nil {
		return nil, err
	}
	return &cdom.UntagResourceOutput{}, nil
}

func (s *Service) listTagsForResource(ctx context.Context, in *cdom.ListTagsForResourceInput) (*cdom.ListTagsForResourceOutput, error) {
	r, err := s.taggable(ctx, *in.ResourceArn)
	if err != nil {
		return nil, err
	}
	out := &cdom.ListTagsForResourceOutput{ResourceArn: ptr.To(r.ARN), Tags: make([]cdom.Tag, 0, len(r.Tags))}
	for _, k := range slices.Sorted(maps.Keys(r.Tags)) {
		out.Tags = append(out.Tags, cdom.Tag{Key: ptr.To(k), Value: ptr.To(r.Tags[k])})
	}
	return out, nil
}

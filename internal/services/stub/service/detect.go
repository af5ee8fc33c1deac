package service

import (
	"context"
	"unicode/utf8"

	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/stub/engine"
)

func (s *Service) detectDominantLanguage(_ context.Context, in *cdom.DetectDominantLanguageInput) (*cdom.DetectDominantLanguageOutput, error) {
	return &cdom.DetectDominantLanguageOutput{Languages: s.Engine.DominantLanguage(*in.Text)}, nil
}

// document is the analysable part of a Text or Bytes input
type document struct {
	text string
	// kind is empty for Text inputs
	kind cdom.DocumentType
}

// readDocument enforces that exactly one of text and raw is present and sniffs raw bytes
func readDocument(text *string, raw []byte) (document, error) {
	switch {
	case text != nil && len(raw) > 0:
		return document{}, fault(cdom.ErrorKindInvalidRequest, "specify either Text or Bytes, not both")
	case text != nil:
		return document{text: *text}, nil
	case len(raw) == 0:
		return document{}, fault(cdom.ErrorKindInvalidRequest, "one of Text or Bytes is required")
	}
	if len(raw) > engine.MaxDocumentBytes {
		return document{}, invalidDocument(cdom.InvalidRequestDetailReasonDocumentSizeExceeded,
			"document size %d exceeds the limit of %d bytes", len(raw), engine.MaxDocumentBytes)
	}
	kind, ok := engine.Sniff(raw)
	if !ok {
		return document{}, invalidDocument(cdom.InvalidRequestDetailReasonUnsupportedDocType, "document type is not supported")
	}
	d := document{kind: kind}
	if kind == cdom.DocumentTypePlainText {
		d.text = string(raw)
	}
	return d, nil
}

func (d document) metadata() (*cdom.DocumentMetadata, []cdom.DocumentTypeListItem) {
	if d.kind == "" {
		return nil, nil
	}
	meta := &cdom.DocumentMetadata{
		Pages: ptr.To[int32](1),
		ExtractedCharacters: []cdom.ExtractedCharactersListItem{
			{Page: ptr.To[int32](1), Count: ptr.To(int32(utf8.RuneCountInString(d.text)))},
		},
	}
	return meta, []cdom.DocumentTypeListItem{{Page: ptr.To[int32](1), Type: ptr.To(d.kind)}}
}

func (s *Service) detectEntities(ctx context.Context, in *cdom.DetectEntitiesInput) (*cdom.DetectEntitiesOutput, error) {
	if in.EndpointArn != nil {
		if _, err := s.servingEndpoint(ctx, *in.EndpointArn); err != nil {
			return nil, err
		}
	} else if in.LanguageCode == nil {
		return nil, fault(cdom.ErrorKindInvalidRequest, "LanguageCode is required when no EndpointArn is given")
	}
	doc, err := readDocument(in.Text, in.Bytes)
	if err != nil {
		return nil, err
	}
	out := &cdom.DetectEntitiesOutput{Entities: s.Engine.Entities(doc.text)}
	out.DocumentMetadata, out.DocumentType = doc.metadata()
	return out, nil
}

func (s *Service) detectKeyPhrases(_ context.Context, in *cdom.DetectKeyPhrasesInput) (*cdom.DetectKeyPhrasesOutput, error) {
	return &cdom.DetectKeyPhrasesOutput{KeyPhrases: s.Engine.KeyPhrases(*in.Text, *in.LanguageCode)}, nil
}

func (s *Service) detectSentiment(_ context.Context, in *cdom.DetectSentimentInput) (*cdom.DetectSentimentOutput, error) {
	st, sc := s.Engine.Sentiment(*in.Text)
	return &cdom.DetectSentimentOutput{Sentiment: &st, SentimentScore: &sc}, nil
}

func (s *Service) detectSyntax(_ context.Context, in *cdom.DetectSyntaxInput) (*cdom.DetectSyntaxOutput, error) {
	return &cdom.DetectSyntaxOutput{SyntaxTokens: s.Engine.Syntax(*in.Text)}, nil
}

func (s *Service) detectPiiEntities(_ context.Context, in *cdom.DetectPiiEntitiesInput) (*cdom.DetectPiiEntitiesOutput, error) {
	return &cdom.DetectPiiEntitiesOutput{Entities: s.Engine.PiiEntities(*in.Text)}, nil
}

func (s *Service) containsPiiEntities(_ context.Context, in *cdom.ContainsPiiEntitiesInput) (*cdom.ContainsPiiEntitiesOutput, error) {
	return &cdom.ContainsPiiEntitiesOutput{Labels: s.Engine.PiiLabels(*in.Text)}, nil
}

func (s *Service) detectToxicContent(_ context.Context, in *cdom.DetectToxicContentInput) (*cdom.DetectToxicContentOutput, error) {
	out := &cdom.DetectToxicContentOutput{ResultList: make([]cdom.ToxicLabels, 0, len(in.TextSegments))}
	for _, seg := range in.TextSegments {
		out.ResultList = append(out.ResultList, s.Engine.Toxic(*seg.Text))
	}
	return out, nil
}

func (s *Service) detectTargetedSentiment(_ context.Context, in *cdom.DetectTargetedSentimentInput) (*cdom.DetectTargetedSentimentOutput, error) {
	return &cdom.DetectTargetedSentimentOutput{Entities: s.Engine.TargetedSentiment(*in.Text)}, nil
}

func (s *Service) classifyDocument(ctx context.Context, in *cdom.ClassifyDocumentInput) (*cdom.ClassifyDocumentOutput, error) {
	ep, err := s.servingEndpoint(ctx, *in.EndpointArn)
	if err != nil {
		return nil, err
	}
	doc, err := readDocument(in.Text, in.Bytes)
	if err != nil {
		return nil, err
	}

	out := &cdom.ClassifyDocumentOutput{}
	out.DocumentMetadata, out.DocumentType = doc.metadata()
	if s.classifierMode(ctx, ep.Ref) == cdom.DocumentClassifierModeMultiLabel {
		out.Labels = s.Engine.Labels(doc.text)
	} else {
		out.Classes = s.Engine.Classes(doc.text)
	}
	return out, nil
}

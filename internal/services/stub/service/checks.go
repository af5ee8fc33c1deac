package service

import (
	"fmt"
	"reflect"
	"strings"

	"comprehend/internal/core/enum"
	perr "comprehend/internal/platform/errors"
	pstrings "comprehend/internal/platform/strings"
	cdom "comprehend/internal/services/comprehend/domain"

	"golang.org/x/text/language"
)

// Service limits
const (
	maxTextBytes     = 100_000
	maxShortText     = 5_000
	maxSegmentBytes  = 1_000
	maxBatchSize     = 25
	maxTagsPerTarget = 200

	// caller values quoted back in fault messages are clipped to this many bytes
	maxEcho = 64
)

// langSet answers whether a code is served, by exact BCP 47 match
type langSet struct {
	m language.Matcher
}

func newLangSet[T ~string](codes ...T) langSet {
	tags := make([]language.Tag, 0, len(codes))
	for _, c := range codes {
		tags = append(tags, language.Make(string(c)))
	}
	return langSet{m: language.NewMatcher(tags)}
}

func (l langSet) has(code string) bool {
	t, err := language.Parse(code)
	if err != nil {
		return false
	}
	_, _, conf := l.m.Match(t)
	return conf == language.Exact
}

var (
	generalLangs = newLangSet(cdom.LanguageCode("").Values()...)
	syntaxLangs  = newLangSet(cdom.SyntaxLanguageCode("").Values()...)
	piiLangs     = newLangSet(cdom.LanguageCodeEn, cdom.LanguageCodeEs)
	englishOnly  = newLangSet(cdom.LanguageCodeEn)
)

func checkLang[T ~string](code *T, set langSet) error {
	if code == nil {
		return nil
	}
	if !set.has(string(*code)) {
		return fault(cdom.ErrorKindUnsupportedLanguage, "language %q is not supported for this operation", pstrings.Clip(string(*code), maxEcho))
	}
	return nil
}

func checkText(text *string, limit int) error {
	if text != nil && len(*text) > limit {
		return fault(cdom.ErrorKindTextSizeLimitExceeded,
			"input text size exceeds limit. Max length of request text allowed is %d bytes while in this request the text size is %d bytes",
			limit, len(*text))
	}
	return nil
}

func checkBatch(list []string, limit int) error {
	if len(list) > maxBatchSize {
		return fault(cdom.ErrorKindBatchSizeLimitExceeded, "batch size %d exceeds the limit of %d documents", len(list), maxBatchSize)
	}
	for i := range list {
		if err := checkText(&list[i], limit); err != nil {
			return err
		}
	}
	return nil
}

// precheck enforces the limits that have their own fault kinds, so they win over generic validation
func precheck(in any) error {
	var errs []error
	switch v := in.(type) {
	case *cdom.DetectDominantLanguageInput:
		errs = append(errs, checkText(v.Text, maxTextBytes))
	case *cdom.DetectEntitiesInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs), checkText(v.Text, maxTextBytes))
	case *cdom.DetectKeyPhrasesInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs), checkText(v.Text, maxTextBytes))
	case *cdom.DetectSentimentInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs), checkText(v.Text, maxShortText))
	case *cdom.DetectSyntaxInput:
		errs = append(errs, checkLang(v.LanguageCode, syntaxLangs), checkText(v.Text, maxShortText))
	case *cdom.DetectPiiEntitiesInput:
		errs = append(errs, checkLang(v.LanguageCode, piiLangs), checkText(v.Text, maxTextBytes))
	case *cdom.ContainsPiiEntitiesInput:
		errs = append(errs, checkLang(v.LanguageCode, piiLangs), checkText(v.Text, maxTextBytes))
	case *cdom.DetectToxicContentInput:
		errs = append(errs, checkLang(v.LanguageCode, englishOnly))
		for _, seg := range v.TextSegments {
			errs = append(errs, checkText(seg.Text, maxSegmentBytes))
		}
	case *cdom.DetectTargetedSentimentInput:
		errs = append(errs, checkLang(v.LanguageCode, englishOnly), checkText(v.Text, maxShortText))
	case *cdom.ClassifyDocumentInput:
		errs = append(errs, checkText(v.Text, maxTextBytes))
	case *cdom.BatchDetectDominantLanguageInput:
		errs = append(errs, checkBatch(v.TextList, maxShortText))
	case *cdom.BatchDetectEntitiesInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs), checkBatch(v.TextList, maxShortText))
	case *cdom.BatchDetectKeyPhrasesInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs), checkBatch(v.TextList, maxShortText))
	case *cdom.BatchDetectSentimentInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs), checkBatch(v.TextList, maxShortText))
	case *cdom.BatchDetectSyntaxInput:
		errs = append(errs, checkLang(v.LanguageCode, syntaxLangs), checkBatch(v.TextList, maxShortText))
	case *cdom.StartEntitiesDetectionJobInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs))
	case *cdom.StartSentimentDetectionJobInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs))
	case *cdom.StartKeyPhrasesDetectionJobInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs))
	case *cdom.StartPiiEntitiesDetectionJobInput:
		errs = append(errs, checkLang(v.LanguageCode, piiLangs))
	case *cdom.CreateDocumentClassifierInput:
		errs = append(errs, checkLang(v.LanguageCode, generalLangs))
	case *cdom.TagResourceInput:
		if len(v.Tags) > maxTagsPerTarget {
			errs = append(errs, fault(cdom.ErrorKindTooManyTags, "a resource can carry at most %d tags", maxTagsPerTarget))
		}
	case *cdom.UntagResourceInput:
		if len(v.TagKeys) > maxTagsPerTarget {
			errs = append(errs, fault(cdom.ErrorKindTooManyTagKeys, "at most %d tag keys can be removed at once", maxTagsPerTarget))
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// requestError turns a decode or validation failure into an InvalidRequestException
func requestError(err error) error {
	msg := err.Error()
	if e, ok := perr.As(err); ok {
		msg = e.Message()
	}
	if ive, ok := enum.IsInvalid(err); ok {
		msg = fmt.Sprintf("value %q is not a valid %s", pstrings.Clip(ive.Token, maxEcho), ive.Enum)
	}
	if field := perr.FieldOf(err); field != "" {
		return fault(cdom.ErrorKindInvalidRequest,
			"1 validation error detected: Value at '%s' failed to satisfy constraint: %s", field, msg)
	}
	return fault(cdom.ErrorKindInvalidRequest, "%s", msg)
}

// textOf returns the text a fixture matches against: the Text member, the joined
// TextList or toxic segments, or "" for shapes without text
func textOf(in any) string {
	v := reflect.ValueOf(in)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ""
	}
	v = v.Elem()
	if f := v.FieldByName("Text"); f.IsValid() && f.Kind() == reflect.Pointer && !f.IsNil() {
		return f.Elem().String()
	}
	if f := v.FieldByName("TextList"); f.IsValid() && f.Kind() == reflect.Slice {
		parts := make([]string, f.Len())
		for i := range parts {
			parts[i] = f.Index(i).String()
		}
		return strings.Join(parts, "\n")
	}
	if t, ok := in.(*cdom.DetectToxicContentInput); ok {
		parts := make([]string, 0, len(t.TextSegments))
		for _, seg := range t.TextSegments {
			if seg.Text != nil {
				parts = append(parts, *seg.Text)
			}
		}
		return strings.Join(parts, "\n")
	}
	return ""
}

package shape

import (
	"context"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"comprehend/internal/core/enum"
	perr "comprehend/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Two tag profiles share the validator machinery:
//   validate:"..."   structural rules enforced by the codec (required members, known enum tokens)
//   constraint:"..." documented API limits checked only when a caller asks (lengths, ARNs, S3 URIs)

const (
	structuralTag = "validate"
	constraintTag = "constraint"
)

type validators struct {
	structural *validator.Validate
	constraint *validator.Validate
	trans      ut.Translator
}

type allowUnknownKey struct{}

var (
	vOnce sync.Once
	vSvc  *validators
)

func get() *validators {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		s := newValidator(structuralTag, trans)
		_ = s.RegisterValidationCtx("enum", knownEnum)
		registerMessage(s, trans, "enum", "{0} must be one of the defined values")

		c := newValidator(constraintTag, trans)
		_ = c.RegisterValidation("maxbytes", maxBytes)
		_ = c.RegisterValidation("arn", arnShape)
		_ = c.RegisterValidation("s3uri", s3URI)
		registerMessage(c, trans, "maxbytes", "{0} must be at most {1} bytes of UTF-8")
		registerMessage(c, trans, "arn", "{0} must be a {1} ARN")
		registerMessage(c, trans, "s3uri", "{0} must be an s3:// URI")
		registerMessage(c, trans, "min", "{0} must be at least {1}")
		registerMessage(c, trans, "max", "{0} must be at most {1}")

		vSvc = &validators{structural: s, constraint: c, trans: trans}
	})
	return vSvc
}

func newValidator(tag string, trans ut.Translator) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName(tag)

	// messages and paths use wire member names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "-" || name == "" {
			return fld.Name
		}
		if idx := strings.Index(name, ","); idx >= 0 {
			name = name[:idx]
		}
		return name
	})
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	return v
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error { return ut.Add(tag, text, true) },
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// knownEnum accepts any value whose type reports the token as defined
func knownEnum(ctx context.Context, fl validator.FieldLevel) bool {
	if allow, _ := ctx.Value(allowUnknownKey{}).(bool); allow {
		return true
	}
	k, ok := fl.Field().Interface().(interface{ IsKnown() bool })
	if !ok {
		return false
	}
	return k.IsKnown()
}

func maxBytes(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	if fl.Field().Kind() == reflect.Slice {
		return fl.Field().Len() <= n
	}
	return len(fl.Field().String()) <= n
}

var (
	patterns   sync.Map // resource -> *regexp.Regexp
	s3Pattern  = regexp.MustCompile(`^s3://[a-z0-9][.\-a-z0-9]{1,61}[a-z0-9](/.*)?$`)
	namePart   = `[a-zA-Z0-9](-*[a-zA-Z0-9])*`
	arnPrefix  = `^arn:aws(-[^:]+)?:`
	iamRolePat = arnPrefix + `iam::[0-9]{12}:role/[a-zA-Z0-9+=,.@_/-]+$`
)

func arnPattern(resource string) *regexp.Regexp {
	if re, ok := patterns.Load(resource); ok {
		return re.(*regexp.Regexp)
	}
	var expr string
	switch resource {
	case "iam-role":
		expr = iamRolePat
	case "any":
		expr = arnPrefix + `comprehend:[a-zA-Z0-9-]*:[0-9]{12}:[a-zA-Z0-9-]+/` + namePart + `(/version/` + namePart + `)?$`
	default:
		expr = arnPrefix + `comprehend:[a-zA-Z0-9-]*:[0-9]{12}:` + regexp.QuoteMeta(resource) + `/` + namePart + `(/version/` + namePart + `)?$`
	}
	re, _ := patterns.LoadOrStore(resource, regexp.MustCompile(expr))
	return re.(*regexp.Regexp)
}

func arnShape(fl validator.FieldLevel) bool {
	return arnPattern(fl.Param()).MatchString(fl.Field().String())
}

func s3URI(fl validator.FieldLevel) bool { return s3Pattern.MatchString(fl.Field().String()) }

// MatchARN reports whether s is an ARN for the given comprehend resource kind
// (document-classifier, document-classifier-endpoint, flywheel, ...), "iam-role" or "any"
func MatchARN(resource, s string) bool { return arnPattern(resource).MatchString(s) }

// check runs one profile over v and maps the first failure to a project error.
// missing maps to the code used for absent required members
func check(ctx context.Context, v *validator.Validate, s any, missing perr.ErrorCode) error {
	err := v.StructCtx(ctx, s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "value is not a shape")
	}
	fe := verrs[0]
	field := fieldPath(fe.Namespace())
	msg := fe.Translate(get().trans)

	switch fe.Tag() {
	case "enum":
		token := reflect.ValueOf(fe.Value()).String()
		ive := &enum.InvalidValueError{Enum: fe.Type().Name(), Token: token}
		return perr.WithField(perr.Wrap(ive, perr.ErrorCodeInvalidEnum, "invalid "+ive.Enum+" value"), field)
	case "required":
		return perr.WithField(perr.New(missing, "missing required member"), field)
	}
	return perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
}

// fieldPath drops the root type name from a validator namespace
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

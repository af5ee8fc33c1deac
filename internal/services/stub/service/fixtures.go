package service

import (
	"encoding/json"
	"os"
	"strings"

	"comprehend/internal/core/enum"
	"comprehend/internal/core/shape"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/ptr"
	pstrings "comprehend/internal/platform/strings"
	cdom "comprehend/internal/services/comprehend/domain"

	"gopkg.in/yaml.v3"
)

// Fixture pins the answer to calls of one operation whose text contains Match.
// Exactly one of Response and Fault is set
type Fixture struct {
	Operation cdom.Operation
	Match     string
	Response  []byte
	Fault     cdom.Fault
}

// Fixtures is a loaded fixtures file. The zero value matches nothing
type Fixtures struct {
	byOp      map[cdom.Operation][]Fixture
	Flywheels []cdom.FlywheelProperties
}

type rawFault struct {
	Type         string `yaml:"type"`
	Message      string `yaml:"message"`
	Reason       string `yaml:"reason"`
	DetailReason string `yaml:"detail_reason"`
}

type rawFixture struct {
	Operation string         `yaml:"operation"`
	Match     string         `yaml:"match"`
	Response  map[string]any `yaml:"response"`
	Fault     *rawFault      `yaml:"fault"`
}

type rawFile struct {
	Fixtures  []rawFixture     `yaml:"fixtures"`
	Flywheels []map[string]any `yaml:"flywheels"`
}

// LoadFixtures reads and parses a fixtures file
func LoadFixtures(path string) (*Fixtures, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "fixtures: read %s", path)
	}
	return ParseFixtures(b)
}

// ParseFixtures parses fixtures YAML. Responses are checked against the operation's output shape
func ParseFixtures(b []byte) (*Fixtures, error) {
	var raw rawFile
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "fixtures: parse yaml")
	}

	fx := &Fixtures{byOp: map[cdom.Operation][]Fixture{}}
	for i, rf := range raw.Fixtures {
		f, err := buildFixture(rf)
		if err != nil {
			return nil, perr.Wrapf(err, perr.CodeOf(err), "fixtures[%d]", i)
		}
		fx.byOp[f.Operation] = append(fx.byOp[f.Operation], f)
	}
	for i, m := range raw.Flywheels {
		var fw cdom.FlywheelProperties
		if err := reshape(m, &fw); err != nil {
			return nil, perr.Wrapf(err, perr.CodeOf(err), "flywheels[%d]", i)
		}
		if fw.FlywheelArn == nil || !shape.MatchARN("flywheel", *fw.FlywheelArn) {
			return nil, perr.InvalidArgf("flywheels[%d]: FlywheelArn must be a flywheel ARN", i)
		}
		fx.Flywheels = append(fx.Flywheels, fw)
	}
	return fx, nil
}

func buildFixture(rf rawFixture) (Fixture, error) {
	op, err := enum.Parse[cdom.Operation](rf.Operation)
	if err != nil {
		return Fixture{}, err
	}
	f := Fixture{Operation: op, Match: rf.Match}

	switch {
	case rf.Fault != nil && rf.Response != nil:
		return Fixture{}, perr.InvalidArgf("%s: response and fault are exclusive", op)
	case rf.Fault != nil:
		f.Fault, err = buildFault(*rf.Fault)
		return f, err
	}

	_, out, _ := cdom.Shapes(op)
	if rf.Response == nil {
		rf.Response = map[string]any{}
	}
	if err := reshape(rf.Response, out); err != nil {
		return Fixture{}, err
	}
	if f.Response, err = shape.Encode(out); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

func buildFault(rf rawFault) (cdom.Fault, error) {
	k, err := enum.Parse[cdom.ErrorKind](rf.Type)
	if err != nil {
		return nil, err
	}
	msg := pstrings.FirstNonEmpty(rf.Message, "fixture fault")
	if k != cdom.ErrorKindInvalidRequest {
		return cdom.Faultf(k, "%s", msg), nil
	}

	ir := &cdom.InvalidRequestException{Message: ptr.To(msg)}
	if rf.Reason != "" {
		r, err := enum.Parse[cdom.InvalidRequestReason](rf.Reason)
		if err != nil {
			return nil, err
		}
		ir.Reason = &r
	}
	if rf.DetailReason != "" {
		d, err := enum.Parse[cdom.InvalidRequestDetailReason](rf.DetailReason)
		if err != nil {
			return nil, err
		}
		ir.Detail = &cdom.InvalidRequestDetail{Reason: &d}
	}
	return ir, nil
}

// reshape moves a YAML document into a shape through its JSON form
func reshape(m map[string]any, dst any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "not representable as JSON")
	}
	return shape.DecodeInto(b, dst)
}

// Match returns the first fixture of op whose Match occurs in text, or in the raw
// payload when the input carries no text. An empty Match matches every call
func (f *Fixtures) Match(op cdom.Operation, text string, payload []byte) (Fixture, bool) {
	if f == nil {
		return Fixture{}, false
	}
	hay := text
	if hay == "" {
		hay = string(payload)
	}
	for _, fx := range f.byOp[op] {
		if strings.Contains(hay, fx.Match) {
			return fx, true
		}
	}
	return Fixture{}, false
}

// Len is the number of loaded fixtures
func (f *Fixtures) Len() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, l := range f.byOp {
		n += len(l)
	}
	return n
}

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comprehend/internal/platform/testkit"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestDecodeCanonical(t *testing.T) {
	code, out, _ := runCLI(t, `{"LanguageCode":"en","Junk":1,"Text":"hi"}`, "decode", "-op", "DetectSentiment")
	testkit.MustEqual(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	testkit.MustLen(t, lines, 2)
	testkit.MustEqual(t, `{"Text":"hi","LanguageCode":"en"}`, lines[0])
	testkit.MustTrue(t, strings.HasPrefix(lines[1], "hash "))
}

func TestDecodeFailures(t *testing.T) {
	code, _, errs := runCLI(t, `{"Text":"hi"}`, "decode", "-op", "DetectSentiment")
	testkit.MustEqual(t, 1, code)
	testkit.MustContain(t, errs, "LanguageCode")

	code, _, _ = runCLI(t, `{}`, "decode", "-op", "Nope")
	testkit.MustEqual(t, 1, code)

	code, _, _ = runCLI(t, `{"Sentiment":"ELATED"}`, "decode", "-op", "DetectSentiment", "-output")
	testkit.MustEqual(t, 1, code)
	code, _, _ = runCLI(t, `{"Sentiment":"ELATED"}`, "decode", "-op", "DetectSentiment", "-output", "-unknown-enums")
	testkit.MustEqual(t, 0, code)
}

func TestDecodeValidate(t *testing.T) {
	in := `{"EndpointArn":"not-an-arn"}`
	code, _, _ := runCLI(t, in, "decode", "-op", "DescribeEndpoint")
	testkit.MustEqual(t, 0, code)
	code, _, errs := runCLI(t, in, "decode", "-op", "DescribeEndpoint", "-validate")
	testkit.MustEqual(t, 1, code)
	testkit.MustContain(t, errs, "EndpointArn")
}

func TestEnums(t *testing.T) {
	code, out, _ := runCLI(t, "", "enums")
	testkit.MustEqual(t, 0, code)
	testkit.MustContain(t, out, "SentimentType\n")

	code, out, _ = runCLI(t, "", "enums", "SentimentType")
	testkit.MustEqual(t, 0, code)
	testkit.MustEqual(t, "POSITIVE\nNEGATIVE\nNEUTRAL\nMIXED\n", out)

	code, _, _ = runCLI(t, "", "enums", "Colour")
	testkit.MustEqual(t, 1, code)
}

func TestInvoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		testkit.MustEqual(t, "Comprehend_20171127.DetectDominantLanguage", r.Header.Get("X-Amz-Target"))
		_, _ = w.Write([]byte(`{"Languages":[{"LanguageCode":"en","Score":0.99}]}`))
	}))
	defer srv.Close()
	t.Setenv("COMPREHEND_ENDPOINT", "")

	code, out, errs := runCLI(t, `{"Text":"hello"}`, "invoke", "-endpoint", srv.URL, "-op", "DetectDominantLanguage")
	testkit.MustEqual(t, 0, code, errs)
	testkit.MustEqual(t, `{"Languages":[{"LanguageCode":"en","Score":0.99}]}`+"\n", out)
}

func TestUsage(t *testing.T) {
	code, _, errs := runCLI(t, "")
	testkit.MustEqual(t, 2, code)
	testkit.MustContain(t, errs, "usage")
}

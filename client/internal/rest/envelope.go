package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// Response is a decoded backend envelope. Meta is nil when the backend sent
// none.
type Response[T, M any] struct {
	StatusCode int
	Message    string
	Data       T
	Meta       *M
}

// NoData is the data type for endpoints whose payload callers ignore.
type NoData = json.RawMessage

type payloadKind int

const (
	payloadStructured payloadKind = iota
	payloadRaw
)

// payload is the body of one response, either a JSON envelope or raw text.
// Envelope fields are pointers so "absent" and "zero" stay distinct.
type payload struct {
	kind       payloadKind
	status     int
	statusText string

	envStatus  *int
	envMessage *string
	data       json.RawMessage
	meta       json.RawMessage

	text string
}

// readPayload consumes and closes resp.Body. Errors are body read failures
// only; a malformed envelope is reported as a structured payload with no
// fields.
func readPayload(resp *http.Response) (payload, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return payload{}, err
	}

	p := payload{
		status:     resp.StatusCode,
		statusText: statusText(resp),
	}
	if !isJSON(resp.Header.Get("Content-Type")) {
		p.kind = payloadRaw
		p.text = string(body)
		return p, nil
	}

	p.kind = payloadStructured
	if !gjson.ValidBytes(body) {
		return p, nil
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return p, nil
	}
	if v := root.Get("statusCode"); v.Type == gjson.Number {
		n := int(v.Int())
		p.envStatus = &n
	}
	if v := root.Get("message"); v.Type == gjson.String {
		s := v.String()
		p.envMessage = &s
	}
	if v := root.Get("data"); v.Exists() {
		p.data = json.RawMessage(v.Raw)
	}
	if v := root.Get("meta"); v.Exists() && v.Type != gjson.Null {
		p.meta = json.RawMessage(v.Raw)
	}
	return p, nil
}

func (p payload) statusCode() int {
	if p.envStatus != nil {
		return *p.envStatus
	}
	return p.status
}

func (p payload) message() string {
	if p.envMessage != nil {
		return *p.envMessage
	}
	return p.statusText
}

// decodePayload converts p into the caller's response type. Data that does
// not fit T is left at its zero value.
func decodePayload[T, M any](p payload) *Response[T, M] {
	out := &Response[T, M]{
		StatusCode: p.statusCode(),
		Message:    p.message(),
	}

	if p.kind == payloadRaw {
		assignText(&out.Data, p.text)
		return out
	}

	if len(p.data) > 0 {
		if err := json.Unmarshal(p.data, &out.Data); err != nil {
			var zero T
			out.Data = zero
			log.Warn().Err(err).Int("status_code", out.StatusCode).Msg("response data does not match expected shape")
		}
	}
	if len(p.meta) > 0 {
		var m M
		if err := json.Unmarshal(p.meta, &m); err != nil {
			log.Warn().Err(err).Int("status_code", out.StatusCode).Msg("response meta does not match expected shape")
		} else {
			out.Meta = &m
		}
	}
	return out
}

func assignText[T any](dst *T, text string) {
	switch d := any(dst).(type) {
	case *string:
		*d = text
	case *[]byte:
		*d = []byte(text)
	case *any:
		*d = text
	case *json.RawMessage:
		// NoData callers ignore the payload.
	default:
		if text != "" {
			log.Warn().Int("body_bytes", len(text)).Msg("text response cannot populate structured data")
		}
	}
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

// statusText returns the reason phrase of resp, e.g. "Not Found".
func statusText(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, prefix)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

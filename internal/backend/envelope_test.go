package backend

import (
	"errors"
	"testing"

	"github.com/lanhcare/admin-gateway/internal/core/domain"
)

func TestDecodeEnvelope(t *testing.T) {
	t.Run("empty body is a valid payload-less envelope", func(t *testing.T) {
		env, err := decodeEnvelope(nil)
		if err != nil {
			t.Fatalf("decodeEnvelope() error = %v", err)
		}
		if len(env.Data) != 0 {
			t.Errorf("Data = %q, want empty", env.Data)
		}
	})

	t.Run("non-JSON body is malformed", func(t *testing.T) {
		_, err := decodeEnvelope([]byte("<html>boom</html>"))
		if !errors.Is(err, domain.ErrMalformedResponse) {
			t.Errorf("error = %v, want ErrMalformedResponse", err)
		}
	})
}

func TestDecodeData(t *testing.T) {
	env := &Envelope{Data: []byte(`{"id":7,"name":"Gold"}`)}
	plan, err := decodeData[domain.ServicePlan](env)
	if err != nil {
		t.Fatalf("decodeData() error = %v", err)
	}
	if plan.ID != 7 || plan.Name != "Gold" {
		t.Errorf("decoded plan = %+v", plan)
	}

	for name, env := range map[string]*Envelope{
		"missing data":    {},
		"null data":       {Data: []byte(`null`)},
		"mismatched data": {Data: []byte(`"just a string"`)},
	} {
		if _, err := decodeData[domain.ServicePlan](env); !errors.Is(err, domain.ErrMalformedResponse) {
			t.Errorf("%s: error = %v, want ErrMalformedResponse", name, err)
		}
	}
}

func TestDecodePage(t *testing.T) {
	t.Run("well-formed page", func(t *testing.T) {
		env := &Envelope{Data: []byte(`{
			"content":[{"id":1,"email":"a@b.c"}],
			"pageable":{"pageNumber":0,"pageSize":20,"totalElements":41,"totalPages":3,"first":true,"last":false}
		}`)}
		pg, err := decodePage[domain.AdminUser](env)
		if err != nil {
			t.Fatalf("decodePage() error = %v", err)
		}
		if len(pg.Content) != 1 || pg.Pageable.TotalElements != 41 || pg.Pageable.Last {
			t.Errorf("decoded page = %+v", pg)
		}
	})

	t.Run("missing content or pageable is malformed", func(t *testing.T) {
		for name, data := range map[string]string{
			"no content":  `{"pageable":{"pageNumber":0}}`,
			"no pageable": `{"content":[]}`,
			"wrong shape": `[1,2,3]`,
		} {
			env := &Envelope{Data: []byte(data)}
			if _, err := decodePage[domain.AdminUser](env); !errors.Is(err, domain.ErrMalformedResponse) {
				t.Errorf("%s: error = %v, want ErrMalformedResponse", name, err)
			}
		}
	})
}

func TestUserMessagePriority(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"message wins over detail and status",
			&UpstreamError{Kind: domain.ErrRequestRejected, StatusCode: 400, Message: "email taken", Detail: "conflict"},
			"email taken",
		},
		{
			"detail when no message",
			&UpstreamError{Kind: domain.ErrRequestRejected, StatusCode: 400, Detail: "conflict"},
			"conflict",
		},
		{
			"status line when body was empty",
			&UpstreamError{Kind: domain.ErrUpstreamServer, StatusCode: 502},
			"502 Bad Gateway",
		},
		{
			"timeout fallback",
			&UpstreamError{Kind: domain.ErrUpstreamTimeout},
			"Request timed out. Please try again.",
		},
		{
			"unreachable fallback",
			&UpstreamError{Kind: domain.ErrUpstreamUnreachable},
			"Cannot reach the server. Please check your connection.",
		},
		{
			"plain error falls back to generic",
			errors.New("boom"),
			"Something went wrong. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

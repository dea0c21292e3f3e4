package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// The status-change endpoints are not uniform upstream: users and service
// plans take a JSON body, dietary restrictions and medical specialties take
// a query parameter. These tests pin the wire shape of each variant.

func TestDietaryChangeStatusTravelsAsQueryParam(t *testing.T) {
	var gotURL, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"status":200,"data":{"id":3,"name":"Vegan","status":"INACTIVE"}}`))
	}))
	defer srv.Close()

	d := NewDietaryRestrictions(newTestClient(t, srv.URL))
	item, err := d.ChangeStatus(context.Background(), 3, "INACTIVE")
	if err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}

	if gotURL != "/api/admin/dietary-restrictions/3/status?status=INACTIVE" {
		t.Errorf("url = %q", gotURL)
	}
	if gotBody != "" {
		t.Errorf("body = %q, want empty: status travels in the query", gotBody)
	}
	if item.Status != "INACTIVE" {
		t.Errorf("item = %+v", item)
	}
}

func TestServicePlanChangeStatusTravelsAsBody(t *testing.T) {
	var gotURL, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"status":200,"data":{"id":5,"name":"Gold","status":"INACTIVE"}}`))
	}))
	defer srv.Close()

	s := NewServicePlans(newTestClient(t, srv.URL))
	if _, err := s.ChangeStatus(context.Background(), 5, "INACTIVE"); err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}

	if gotURL != "/api/admin/service-plans/5/status" {
		t.Errorf("url = %q", gotURL)
	}
	if gotBody != `{"status":"INACTIVE"}` {
		t.Errorf("body = %q, want JSON status body", gotBody)
	}
}

func TestExerciseTypeRestore(t *testing.T) {
	var gotURL, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"status":200,"data":{"id":8,"name":"Swimming","status":"ACTIVE"}}`))
	}))
	defer srv.Close()

	e := NewExerciseTypes(newTestClient(t, srv.URL))
	item, err := e.Restore(context.Background(), 8)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if gotMethod != http.MethodPatch || gotURL != "/api/admin/exercise-types/8/restore" {
		t.Errorf("request = %s %s", gotMethod, gotURL)
	}
	if item.Status != "ACTIVE" {
		t.Errorf("item = %+v", item)
	}
}

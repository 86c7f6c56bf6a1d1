package baremetal

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-test/deep"
	"github.com/gophercloud/gophercloud/v2"
)

func testServiceClient(t *testing.T, handler http.Handler) *gophercloud.ServiceClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &gophercloud.ServiceClient{
		ProviderClient: &gophercloud.ProviderClient{},
		Endpoint:       srv.URL + "/",
	}
}

func TestAttachVIF(t *testing.T) {
	ctx := context.Background()

	var gotBody map[string]interface{}
	cli := testServiceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Error(r.Method)
		}
		if r.URL.Path != "/nodes/aaaa-node/vifs" {
			t.Error(r.URL.Path)
		}
		err := json.NewDecoder(r.Body).Decode(&gotBody)
		if err != nil {
			t.Error(err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	c := NewNodesClient(cli)

	err := c.AttachVIF(ctx, "aaaa-node", "np-a", "pp-1")
	if err != nil {
		t.Fatal(err)
	}

	wantBody := map[string]interface{}{
		"id":        "np-a",
		"port_uuid": "pp-1",
	}
	for _, l := range deep.Equal(gotBody, wantBody) {
		t.Error(l)
	}
}

func TestDetachVIF(t *testing.T) {
	ctx := context.Background()

	cli := testServiceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Error(r.Method)
		}
		if r.URL.Path != "/nodes/aaaa-node/vifs/np-a" {
			t.Error(r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	c := NewNodesClient(cli)

	err := c.DetachVIF(ctx, "aaaa-node", "np-a")
	if err != nil {
		t.Fatal(err)
	}
}

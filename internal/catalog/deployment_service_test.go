// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import (
	"context"
	"testing"
)

func TestStubDeploymentProvider(t *testing.T) {
	t.Parallel()

	p := NewStubDeploymentProvider()

	all, err := p.ListDeployments(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("expected canned deployments")
	}

	d, found, err := p.GetDeployment(context.Background(), all[0].ID)
	if err != nil || !found {
		t.Fatalf("expected deployment %s, found=%v err=%v", all[0].ID, found, err)
	}
	if d.ServiceID == "" || d.Image == "" {
		t.Errorf("incomplete deployment record: %+v", d)
	}

	if _, found, _ = p.GetDeployment(context.Background(), "ghost"); found {
		t.Error("expected ghost deployment to be absent")
	}
}

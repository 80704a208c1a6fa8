package clusterization

import (
	"context"
	"errors"
	"sync"
	"time"
)

var errFake = errors.New("fake failure")

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeProvider serves canned listings and usage rows keyed by workspace id.
type fakeProvider struct {
	mu sync.Mutex

	subs       []Subscription
	subsErr    error
	clusters   map[string][]Cluster
	clusterErr error
	workspaces map[string][]Workspace
	wsErr      error

	// usage maps a workspace id to the summed 30 day GB value.
	usage    map[string]any
	usageErr map[string]error

	queries []UsageQuery
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		clusters:   make(map[string][]Cluster),
		workspaces: make(map[string][]Workspace),
		usage:      make(map[string]any),
		usageErr:   make(map[string]error),
	}
}

func (f *fakeProvider) ListSubscriptions(_ context.Context) ([]Subscription, error) {
	return f.subs, f.subsErr
}

func (f *fakeProvider) ListClusters(_ context.Context, sub Subscription) ([]Cluster, error) {
	if f.clusterErr != nil {
		return nil, f.clusterErr
	}
	return f.clusters[sub.ID], nil
}

func (f *fakeProvider) ListWorkspaces(_ context.Context, sub Subscription) ([]Workspace, error) {
	if f.wsErr != nil {
		return nil, f.wsErr
	}
	return f.workspaces[sub.ID], nil
}

func (f *fakeProvider) QueryUsage(_ context.Context, q UsageQuery) ([][]any, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	if err, ok := f.usageErr[q.Workspace.ID]; ok {
		return nil, err
	}
	v, ok := f.usage[q.Workspace.ID]
	if !ok {
		return [][]any{}, nil
	}
	return [][]any{{v}}, nil
}

// daily sets the usage so the sampled daily average equals gb.
func (f *fakeProvider) daily(wsID string, gb float64) {
	f.usage[wsID] = gb * UsageWindowDays
}

func (f *fakeProvider) queriedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.queries))
	for _, q := range f.queries {
		ids = append(ids, q.Workspace.ID)
	}
	return ids
}

func testSampler(p UsageQuerier) *Sampler {
	return NewSampler(p, WithClock(func() time.Time { return fixedNow }))
}

func ref(id string) WorkspaceRef {
	return WorkspaceRef{ID: id, Name: id, CustomerID: "cust-" + id}
}

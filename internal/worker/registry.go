package worker

// Registry holds all account pollers. The set is fixed at startup; only
// snapshot reads happen afterwards.
type Registry struct {
	pollers []*Poller
}

func NewRegistry(pollers ...*Poller) *Registry {
	return &Registry{pollers: pollers}
}

func (r *Registry) Size() int {
	return len(r.pollers)
}

func (r *Registry) Pollers() []*Poller {
	return r.pollers
}

func (r *Registry) Snapshots() []Snapshot {
	snapshots := make([]Snapshot, 0, len(r.pollers))
	for _, poller := range r.pollers {
		snapshots = append(snapshots, poller.Snapshot())
	}

	return snapshots
}

func (r *Registry) Snapshot(name string) (Snapshot, bool) {
	for _, poller := range r.pollers {
		if poller.Name() == name {
			return poller.Snapshot(), true
		}
	}

	return Snapshot{}, false
}

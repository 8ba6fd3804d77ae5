package attribution

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Separator joins the rendered attribution fragments for display.
const Separator = " | "

// Reconciler computes the deduplicated attribution string for whatever is
// currently visible.
//
// Logical layers register an attribution fragment when they are added to
// the active set and unregister on removal; in between, visibility is
// derived purely by recomputing from the snapshot passed to each
// [Reconciler.Reconcile] call. The reconciler carries no visibility state
// of its own.
//
// All work runs on the caller's single logical thread, in response to
// discrete events; the Reconciler is not goroutine-safe.
type Reconciler struct {
	logger  *log.Logger
	order   []string
	entries map[string]string
}

// New creates a Reconciler. A nil logger falls back to log.Default().
func New(logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{
		logger:  logger,
		entries: make(map[string]string),
	}
}

// Register records the attribution fragment for a logical layer id.
// Re-registering an id replaces its fragment and keeps its original
// position in the output order.
func (r *Reconciler) Register(id, attributionHTML string) {
	if _, ok := r.entries[id]; !ok {
		r.order = append(r.order, id)
	}
	r.entries[id] = attributionHTML
}

// Unregister removes a logical layer's attribution.
func (r *Reconciler) Unregister(id string) {
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Registered returns the registered ids in registration order.
func (r *Reconciler) Registered() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Reconcile computes the attribution string for the given snapshot.
// Safe to call on every style, source, visibility or camera event; the
// result depends only on the snapshot and the registered entries. An
// unloaded snapshot yields "".
func (r *Reconciler) Reconcile(snap Snapshot) string {
	return strings.Join(r.Fragments(snap), Separator)
}

// Fragments returns the ordered, deduplicated, rendered attribution
// fragments for the snapshot. Exposed separately so HTTP callers can
// return a list instead of the joined string.
func (r *Reconciler) Fragments(snap Snapshot) []string {
	if !snap.Loaded {
		return nil
	}

	visibleSources := make(map[string]bool)
	visibleOwners := make(map[string]bool)
	for _, l := range snap.Layers {
		if !l.Visible() {
			continue
		}
		if l.Source != "" {
			visibleSources[l.Source] = true
		}
		if owner := inferOwner(l, r.order); owner != "" {
			visibleOwners[owner] = true
		}
	}

	// Attribution strings owned by registered layers; a source carrying
	// the same text must not produce a duplicate fragment.
	owned := make(map[string]bool, len(r.entries))
	for _, html := range r.entries {
		owned[html] = true
	}

	var raw []string
	for _, src := range snap.Sources {
		if !visibleSources[src.ID] || src.Attribution == "" || owned[src.Attribution] {
			continue
		}
		raw = append(raw, src.Attribution)
	}

	// Registered attributions only for owners confirmed by at least one
	// concretely visible style layer. Inference alone (step 2) can
	// over-match on prefixes; visibleOwners was built from visible style
	// layers only, so membership is the confirmation.
	for _, id := range r.order {
		if visibleOwners[id] && r.entries[id] != "" {
			raw = append(raw, r.entries[id])
		}
	}

	return r.render(raw, snap.Camera)
}

// render expands each fragment into deduplicated display pieces. A
// fragment that fails to parse is dropped with a diagnostic; the rest
// still render.
func (r *Reconciler) render(fragments []string, cam Camera) []string {
	seenLinks := make(map[[2]string]bool)
	seenText := make(map[string]bool)

	var out []string
	for _, frag := range fragments {
		if err := checkFragment(frag); err != nil {
			r.logger.Warn("dropping malformed attribution fragment", "error", err)
			continue
		}

		links, err := extractLinks(frag)
		if err != nil {
			r.logger.Warn("dropping malformed attribution fragment", "error", err)
			continue
		}

		if len(links) == 0 {
			text, err := plainText(frag)
			if err != nil {
				r.logger.Warn("dropping malformed attribution fragment", "error", err)
				continue
			}
			if text == "" || seenText[text] {
				continue
			}
			seenText[text] = true
			out = append(out, text)
			continue
		}

		for _, l := range links {
			key := [2]string{l.href, l.text}
			if seenLinks[key] {
				continue
			}
			seenLinks[key] = true
			out = append(out, renderLink(l, cam))
		}
	}

	return out
}

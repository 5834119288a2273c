package resolve_test

import (
	"testing"

	"bindery/internal/config"
	"bindery/internal/resolve"
)

func newResolver(t *testing.T) *resolve.Resolver {
	t.Helper()
	cfg := config.Default()
	return resolve.New(&cfg)
}

func TestResolvePrefersShortestDirectMatch(t *testing.T) {
	r := newResolver(t)

	pool := []string{
		"Board Book.Three Little Kittens.Extra.pdf",
		"Board Book.Three Little Kittens.pdf",
	}
	name, ok := r.Resolve([]string{"Board Book.Three Little Kittens."}, pool)
	if !ok {
		t.Fatal("expected a match")
	}
	if name != "Board Book.Three Little Kittens.pdf" {
		t.Fatalf("expected shortest match, got %q", name)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	r := newResolver(t)

	pool := []string{"board book.three little kittens.PDF"}
	name, ok := r.Resolve([]string{"Board Book.Three Little Kittens."}, pool)
	if !ok || name != "board book.three little kittens.PDF" {
		t.Fatalf("expected case-insensitive match, got %q ok=%v", name, ok)
	}
}

func TestResolveAnchoredPrefix(t *testing.T) {
	r := newResolver(t)

	// "Cat" must not match "Caterpillar": the trailing separator anchors it.
	pool := []string{"Board Book.Caterpillar.pdf"}
	if _, ok := r.Resolve([]string{"Board Book.Cat."}, pool); ok {
		t.Fatal("expected no match for partial-word prefix")
	}
}

func TestResolveSkipsExcludedExtension(t *testing.T) {
	r := newResolver(t)

	pool := []string{
		"SH.ANIM.Wheels on the Bus.mov",
		"SH.ANIM.Wheels on the Bus.Take2.mp4",
	}
	name, ok := r.Resolve([]string{"SH.ANIM.Wheels on the Bus."}, pool)
	if !ok {
		t.Fatal("expected a match")
	}
	// The .mov is shorter but excluded; the longer .mp4 wins.
	if name != "SH.ANIM.Wheels on the Bus.Take2.mp4" {
		t.Fatalf("expected excluded extension to be skipped, got %q", name)
	}
}

func TestResolveSubstitutionFallback(t *testing.T) {
	r := newResolver(t)

	// No direct match: the prefix carries a comma the filename lacks.
	pool := []string{"MGC.ANIM.Old MacDonald Pt. 1.mp4"}
	name, ok := r.Resolve([]string{"MGC.ANIM.Old MacDonald, Pt. 1."}, pool)
	if !ok {
		t.Fatal("expected fallback match")
	}
	if name != "MGC.ANIM.Old MacDonald Pt. 1.mp4" {
		t.Fatalf("unexpected fallback match: %q", name)
	}
}

func TestResolveGivenNameSubstitution(t *testing.T) {
	r := newResolver(t)

	pool := []string{"SH.LIVE.Pat-a-Cake.Noa.mp4"}
	name, ok := r.Resolve([]string{"SH.LIVE.Pat-a-Cake Noa."}, pool)
	if !ok || name != "SH.LIVE.Pat-a-Cake.Noa.mp4" {
		t.Fatalf("expected given-name substitution match, got %q ok=%v", name, ok)
	}
}

func TestResolveAccumulatesAcrossCandidates(t *testing.T) {
	r := newResolver(t)

	pool := []string{
		"MGC.LIVE.Humpty Dumpty.Full Session.mp4",
		"MGC.ANIM.Humpty Dumpty.mp4",
	}
	// The live candidate matches first; the later anim candidate is shorter
	// and takes over the accumulator.
	prefixes := []string{"MGC.LIVE.Humpty Dumpty.", "MGC.ANIM.Humpty Dumpty."}
	name, ok := r.Resolve(prefixes, pool)
	if !ok || name != "MGC.ANIM.Humpty Dumpty.mp4" {
		t.Fatalf("expected later candidate to improve match, got %q ok=%v", name, ok)
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := newResolver(t)

	pool := []string{"Board Book.Unrelated.pdf"}
	if name, ok := r.Resolve([]string{"Board Book.Three Little Kittens."}, pool); ok {
		t.Fatalf("expected no match, got %q", name)
	}
}

func TestResolveEmptyInputs(t *testing.T) {
	r := newResolver(t)

	if _, ok := r.Resolve(nil, []string{"anything.pdf"}); ok {
		t.Fatal("expected no match with no candidates")
	}
	if _, ok := r.Resolve([]string{"Board Book.X."}, nil); ok {
		t.Fatal("expected no match with empty pool")
	}
}

func TestStepKeepsShorterExistingBest(t *testing.T) {
	r := newResolver(t)

	pool := []string{"MGC.LIVE.Jack and Jill.Extended Cut.mp4"}
	best := r.Step("MGC.ANIM.Jack and Jill.mp4", "MGC.LIVE.Jack and Jill.", pool)
	if best != "MGC.ANIM.Jack and Jill.mp4" {
		t.Fatalf("expected shorter existing best to survive, got %q", best)
	}
}

func TestStepFallbackOverwritesBest(t *testing.T) {
	r := newResolver(t)

	// A fallback match overwrites the accumulator outright, even when the
	// current best is shorter.
	pool := []string{"MGC.LIVE.Jack and Jill Group.mp4"}
	best := r.Step("short.mp4", "MGC.LIVE.Jack and Jill, Group.", pool)
	if best != "MGC.LIVE.Jack and Jill Group.mp4" {
		t.Fatalf("expected fallback to overwrite best, got %q", best)
	}
}

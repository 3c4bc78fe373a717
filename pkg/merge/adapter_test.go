package merge

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSampleAdapter builds the header + names screen: one static header view and
// an 11-name array provider, both still inactive.
func newSampleAdapter() (*Adapter, *textView, *ArrayProvider[string]) {
	a := New()
	header := newTextView("Breaking Bad (Main Characters)")
	a.AddView(header)
	names := NewArrayProvider(bindText, characterNames...)
	a.AddProvider(names)
	return a, header, names
}

func TestAdapter_ProvidersStartInactive(t *testing.T) {
	a, _, names := newSampleAdapter()

	assert.Equal(t, 0, a.Count())
	assert.False(t, a.IsActive(names))
	assert.Nil(t, a.Item(0))
	assert.Len(t, a.States(), 2)
}

func TestAdapter_HeaderAndNames(t *testing.T) {
	a, header, names := newSampleAdapter()
	a.SetActive(names, true)
	a.SetActiveView(header, true)

	require.Equal(t, 12, a.Count())

	owner, local, ok := a.Locate(0)
	require.True(t, ok)
	assert.IsType(t, &StaticProvider{}, owner)
	assert.Equal(t, 0, local)
	assert.Same(t, header, a.Item(0))

	for pos := 1; pos <= 11; pos++ {
		owner, local, ok := a.Locate(pos)
		require.True(t, ok, "position %d", pos)
		assert.Same(t, names, owner, "position %d", pos)
		assert.Equal(t, pos-1, local)
		assert.Equal(t, characterNames[pos-1], a.Item(pos))
		assert.Equal(t, int64(pos-1), a.ItemID(pos))
		assert.True(t, a.IsEnabled(pos))
	}
}

func TestAdapter_DeactivatingShiftsPositions(t *testing.T) {
	a, header, names := newSampleAdapter()
	a.SetActive(names, true)
	a.SetActiveView(header, true)

	a.SetActiveView(header, false)

	assert.Equal(t, 11, a.Count())
	owner, local, ok := a.Locate(0)
	require.True(t, ok)
	assert.Same(t, names, owner)
	assert.Equal(t, 0, local)
	assert.Equal(t, characterNames[0], a.Item(0))

	// Toggling back restores the original layout.
	a.SetActiveView(header, true)
	assert.Equal(t, 12, a.Count())
	assert.Same(t, header, a.Item(0))
	assert.Equal(t, characterNames[0], a.Item(1))
}

func TestAdapter_OutOfRangeDefaults(t *testing.T) {
	a, header, names := newSampleAdapter()
	a.SetActive(names, true)
	a.SetActiveView(header, true)

	for _, pos := range []int{-1, 12, 500} {
		assert.Nil(t, a.Item(pos), "item %d", pos)
		assert.Nil(t, a.ProviderAt(pos), "provider %d", pos)
		assert.Equal(t, NoID, a.ItemID(pos), "id %d", pos)
		assert.False(t, a.IsEnabled(pos), "enabled %d", pos)
		assert.Nil(t, a.View(pos, nil, Parent{Width: 40}), "view %d", pos)
		assert.Equal(t, -1, a.ItemViewType(pos), "view type %d", pos)
		assert.Equal(t, 0, a.SectionForPosition(pos), "section %d", pos)
	}
}

func TestAdapter_EveryPositionHasOneOwner(t *testing.T) {
	a := New()
	first := &countingProvider{name: "a", rows: 3, viewTypes: 1}
	second := &countingProvider{name: "b", rows: 0, viewTypes: 1}
	third := &countingProvider{name: "c", rows: 4, viewTypes: 2, enabled: true}
	for _, p := range []Provider{first, second, third} {
		a.AddProvider(p)
		a.SetActive(p, true)
	}

	require.Equal(t, 7, a.Count())
	want := []struct {
		owner Provider
		local int
	}{
		{first, 0}, {first, 1}, {first, 2},
		{third, 0}, {third, 1}, {third, 2}, {third, 3},
	}
	for pos, w := range want {
		owner, local, ok := a.Locate(pos)
		require.True(t, ok)
		assert.Same(t, w.owner, owner, "position %d", pos)
		assert.Equal(t, w.local, local, "position %d", pos)
		assert.Equal(t, w.owner.Item(w.local), a.Item(pos))
		assert.Equal(t, w.owner.ItemID(w.local), a.ItemID(pos))
		assert.Equal(t, w.owner.IsEnabled(w.local), a.IsEnabled(pos))
		assert.Equal(t, w.owner.View(w.local, nil, Parent{}).Render(0), a.View(pos, nil, Parent{}).Render(0))
	}
}

func TestAdapter_ViewTypeCount(t *testing.T) {
	t.Run("empty adapter reports one type", func(t *testing.T) {
		assert.Equal(t, 1, New().ViewTypeCount())
	})

	t.Run("counts inactive providers too", func(t *testing.T) {
		a := New()
		p1 := &countingProvider{name: "a", rows: 2, viewTypes: 2}
		p2 := &countingProvider{name: "b", rows: 2, viewTypes: 3}
		a.AddProvider(p1)
		a.AddProvider(p2)
		assert.Equal(t, 5, a.ViewTypeCount())

		a.SetActive(p1, true)
		a.SetActive(p2, true)
		before := a.ViewTypeCount()
		a.SetActive(p1, false)
		assert.Equal(t, before, a.ViewTypeCount())
	})
}

func TestAdapter_ItemViewTypeBandsStayStable(t *testing.T) {
	a := New()
	p1 := &countingProvider{name: "a", rows: 2, viewTypes: 2}
	p2 := &countingProvider{name: "b", rows: 3, viewTypes: 3}
	p3 := &countingProvider{name: "c", rows: 1, viewTypes: 1}
	for _, p := range []Provider{p1, p2, p3} {
		a.AddProvider(p)
		a.SetActive(p, true)
	}

	// p1 owns types 0-1, p2 owns 2-4, p3 owns 5.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, viewTypes(a))

	// p1 inactive: its rows vanish but p2 and p3 keep their bands.
	a.SetActive(p1, false)
	assert.Equal(t, []int{2, 3, 4, 5}, viewTypes(a))

	a.SetActive(p2, false)
	assert.Equal(t, []int{5}, viewTypes(a))

	a.SetActive(p1, true)
	assert.Equal(t, []int{0, 1, 5}, viewTypes(a))
}

func viewTypes(a *Adapter) []int {
	out := []int{}
	for pos := 0; pos < a.Count(); pos++ {
		out = append(out, a.ItemViewType(pos))
	}
	return out
}

func TestAdapter_Enablement(t *testing.T) {
	a := New()
	inert := a.AddViews([]View{newTextView("header 1"), newTextView("header 2")})
	clickable := a.AddViewsEnabled([]View{newTextView("footer 1"), newTextView("footer 2")}, true)
	a.SetActive(inert, true)
	a.SetActive(clickable, true)

	assert.False(t, a.IsEnabled(0))
	assert.False(t, a.IsEnabled(1))
	assert.True(t, a.IsEnabled(2))
	assert.True(t, a.IsEnabled(3))
	assert.False(t, a.AreAllItemsEnabled())

	a.SetActive(inert, false)
	assert.True(t, a.IsEnabled(0))
	assert.False(t, a.AreAllItemsEnabled())
}

func TestAdapter_Sections(t *testing.T) {
	t.Run("only section-capable providers contribute", func(t *testing.T) {
		a := New()
		letters := newFixedSections("letters", []string{"A", "B"}, 2)
		plain := &countingProvider{name: "plain", rows: 3, viewTypes: 1}
		a.AddProvider(letters)
		a.AddProvider(plain)
		a.SetActive(letters, true)
		a.SetActive(plain, true)

		assert.Equal(t, []string{"A", "B"}, a.Sections())
	})

	t.Run("empty adapter has empty, non-nil sections", func(t *testing.T) {
		sections := New().Sections()
		assert.NotNil(t, sections)
		assert.Empty(t, sections)
	})

	t.Run("positions account for non-indexed providers", func(t *testing.T) {
		a := New()
		header := a.AddView(newTextView("header"))
		first := newFixedSections("first", []string{"A", "B"}, 2)
		second := newFixedSections("second", []string{"C", "D", "E"}, 3)
		a.AddProvider(first)
		a.AddProvider(second)
		for _, p := range []Provider{header, first, second} {
			a.SetActive(p, true)
		}

		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, a.Sections())
		assert.Equal(t, 1, a.PositionForSection(0))
		assert.Equal(t, 3, a.PositionForSection(1))
		assert.Equal(t, 5, a.PositionForSection(2))
		assert.Equal(t, 8, a.PositionForSection(3))
		assert.Equal(t, 11, a.PositionForSection(4))
		assert.Equal(t, 0, a.PositionForSection(5))

		assert.Equal(t, 0, a.SectionForPosition(0), "header row has no section")
		assert.Equal(t, 0, a.SectionForPosition(1))
		assert.Equal(t, 1, a.SectionForPosition(4))
		assert.Equal(t, 2, a.SectionForPosition(5))
		assert.Equal(t, 4, a.SectionForPosition(13))
	})

	t.Run("section lookups are inverse", func(t *testing.T) {
		a := New()
		first := newFixedSections("first", []string{"A", "B", "C"}, 1)
		second := newFixedSections("second", []string{"D", "E"}, 4)
		names := NewSectionedArrayProvider(bindText, firstLetter, characterNames...)
		for _, p := range []Provider{first, second, names} {
			a.AddProvider(p)
			a.SetActive(p, true)
		}

		for s := range a.Sections() {
			assert.Equal(t, s, a.SectionForPosition(a.PositionForSection(s)), "section %d", s)
		}
	})
}

func TestAdapter_ChangeNotifications(t *testing.T) {
	a, header, names := newSampleAdapter()
	rec := &changeRecorder{}
	unregister := a.RegisterObserver(rec.observe)

	a.SetActive(names, true)
	a.SetActiveView(header, true)
	assert.Equal(t, []ChangeKind{Changed, Changed}, rec.kinds)

	names.Append("Tuco Salamanca")
	names.Invalidate()
	assert.Equal(t, []ChangeKind{Changed, Changed, Changed, Invalidated}, rec.kinds)
	assert.Equal(t, 13, a.Count())

	unregister()
	names.Clear()
	assert.Len(t, rec.kinds, 4)
}

func TestAdapter_ActivationByID(t *testing.T) {
	a := New()
	p := &countingProvider{name: "a", rows: 2, viewTypes: 1}
	id := a.AddProvider(p)

	a.SetActiveID(id, true)
	assert.Equal(t, 2, a.Count())

	a.SetActiveID(uuid.New(), false)
	assert.Equal(t, 2, a.Count(), "unknown IDs are ignored")

	a.SetActiveID(id, false)
	assert.Equal(t, 0, a.Count())
}

func TestAdapter_DistinctProvidersWithSameContent(t *testing.T) {
	a := New()
	p1 := NewArrayProvider(bindText, "x", "y")
	p2 := NewArrayProvider(bindText, "x", "y")
	a.AddProvider(p1)
	a.AddProvider(p2)

	a.SetActive(p2, true)
	assert.False(t, a.IsActive(p1))
	assert.True(t, a.IsActive(p2))
	assert.Same(t, p2, a.ProviderAt(0))
}

func TestAdapter_Nesting(t *testing.T) {
	inner := New()
	names := NewArrayProvider(bindText, "a", "b")
	inner.AddProvider(names)
	inner.SetActive(names, true)

	outer := New()
	header := outer.AddView(newTextView("header"))
	outer.AddProvider(inner)
	outer.SetActive(header, true)
	outer.SetActive(inner, true)

	rec := &changeRecorder{}
	outer.RegisterObserver(rec.observe)

	assert.Equal(t, 3, outer.Count())
	assert.Equal(t, "b", outer.Item(2))

	names.Append("c")
	assert.Equal(t, []ChangeKind{Changed}, rec.kinds)
	assert.Equal(t, 4, outer.Count())
}

func TestAdapter_Close(t *testing.T) {
	a, header, names := newSampleAdapter()
	a.SetActive(names, true)
	a.SetActiveView(header, true)
	rec := &changeRecorder{}
	a.RegisterObserver(rec.observe)

	a.Close()

	assert.Equal(t, 0, a.Count())
	assert.Empty(t, a.States())
	assert.Equal(t, 0, names.ObserverCount())
	names.Append("late")
	assert.Empty(t, rec.kinds)
}

func TestAdapter_ViewDelegatesRecycledHint(t *testing.T) {
	a, header, names := newSampleAdapter()
	a.SetActive(names, true)
	a.SetActiveView(header, true)

	first := a.View(1, nil, Parent{Width: 40})
	second := a.View(2, first, Parent{Width: 40})

	assert.Same(t, first, second, "array provider rebinds the recycled view")
	assert.Equal(t, characterNames[1], second.Render(40))
	assert.Same(t, header, a.View(0, second, Parent{Width: 40}), "static rows ignore the hint")
}

package catalog

// PageLink is one entry of the page-number bar. Ellipsis entries stand for a
// run of hidden pages and carry no number.
type PageLink struct {
	Number   int
	Current  bool
	Ellipsis bool
}

type Pager struct {
	Links   []PageLink
	HasPrev bool
	HasNext bool
}

// PageWindow builds the page-number bar: the first and last pages, the
// current page and its neighbours, and one ellipsis for each hidden run.
// A single page needs no bar, so total <= 1 yields the zero Pager. current is
// clamped to [1, total].
func PageWindow(current, total int) Pager {
	if total <= 1 {
		return Pager{}
	}
	current = min(max(current, 1), total)

	p := Pager{
		HasPrev: current > 1,
		HasNext: current < total,
	}

	for i := 1; i <= total; i++ {
		switch {
		case i == 1 || i == total || (i >= current-1 && i <= current+1):
			p.Links = append(p.Links, PageLink{Number: i, Current: i == current})
		case i == current-2 || i == current+2:
			p.Links = append(p.Links, PageLink{Ellipsis: true})
		}
	}

	return p
}

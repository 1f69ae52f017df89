package explore

import (
	"strconv"

	"github.com/mwiater/evalscope/internal/util"
)

// PageSize is the fixed page window for the list view.
const PageSize = 5

// Pager computes deterministic page windows over a sequence whose length may
// change between recomputes. Pages are 1-based.
type Pager struct {
	page int
}

// NewPager starts on page 1.
func NewPager() *Pager { return &Pager{page: 1} }

// TotalPages is ceil(n / PageSize), never less than 1.
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// Page returns the current page, clamped down when the backing sequence has
// shrunk below it.
func (p *Pager) Page(n int) int {
	if total := TotalPages(n); p.page > total {
		p.page = total
	}
	if p.page < 1 {
		p.page = 1
	}
	return p.page
}

// Window returns the half-open slice bounds [start, end) of the current
// page over a sequence of length n.
func (p *Pager) Window(n int) (int, int) {
	page := p.Page(n)
	start := (page - 1) * PageSize
	if start > n {
		start = n
	}
	end := util.Min(page*PageSize, n)
	return start, end
}

// Next advances one page, saturating at the last.
func (p *Pager) Next(n int) {
	if page := p.Page(n); page < TotalPages(n) {
		p.page = page + 1
	}
}

// Prev steps back one page, saturating at the first.
func (p *Pager) Prev(n int) {
	if page := p.Page(n); page > 1 {
		p.page = page - 1
	}
}

// Goto commits free-text page input: non-digit characters are discarded,
// the remainder parses to an integer clamped into [1, TotalPages(n)]. An
// empty input reverts to the current page and reports false.
func (p *Pager) Goto(input string, n int) bool {
	digits := util.DigitsOnly(input)
	if digits == "" {
		return false
	}
	page, err := strconv.Atoi(digits)
	if err != nil {
		// Overflow: every digit string is otherwise parseable.
		page = TotalPages(n)
	}
	if total := TotalPages(n); page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	p.page = page
	return true
}

// Indicator renders "page/total" for display; an empty sequence reads 0.
func (p *Pager) Indicator(n int) string {
	if n == 0 {
		return "0"
	}
	return strconv.Itoa(p.Page(n)) + "/" + strconv.Itoa(TotalPages(n))
}

package listing

import (
	"reflect"
	"testing"
)

func TestPaginate_Basic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Paginate(items, 2, 2)
	if !reflect.DeepEqual(page.Items, []int{3, 4}) {
		t.Fatalf("expected [3 4], got %v", page.Items)
	}
	if !page.HasPrev || !page.HasNext {
		t.Fatalf("expected both neighbours, got prev=%v next=%v", page.HasPrev, page.HasNext)
	}
	if page.Total != 5 {
		t.Fatalf("expected total 5, got %d", page.Total)
	}
}

func TestPaginate_Defaults(t *testing.T) {
	items := make([]int, 25)

	page := Paginate(items, 0, 0)
	if page.Page != 1 || page.PageSize != 10 {
		t.Fatalf("expected defaults page=1 size=10, got %d/%d", page.Page, page.PageSize)
	}
	if len(page.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(page.Items))
	}
}

func TestPaginate_PastEnd(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 5, 10)
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %v", page.Items)
	}
	if page.HasNext {
		t.Fatalf("expected no next page")
	}
	if !page.HasPrev {
		t.Fatalf("expected prev page")
	}
}

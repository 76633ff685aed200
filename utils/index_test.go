package utils

import (
	"bytes"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestPaginateSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page1 := PaginateSlice(items, intPtr(2), intPtr(1))
	if len(page1) != 2 || page1[0] != 1 || page1[1] != 2 {
		t.Fatalf("page 1 = %v", page1)
	}

	page3 := PaginateSlice(items, intPtr(2), intPtr(3))
	if len(page3) != 1 || page3[0] != 5 {
		t.Fatalf("last partial page = %v", page3)
	}

	beyond := PaginateSlice(items, intPtr(2), intPtr(4))
	if len(beyond) != 0 {
		t.Fatalf("page past the end should be empty, got %v", beyond)
	}

	all := PaginateSlice(items, nil, nil)
	if len(all) != len(items) {
		t.Fatalf("nil pagination should return everything, got %v", all)
	}
}

func TestToJSONList(t *testing.T) {
	if got := ToJSONList(nil); string(got) != "[]" {
		t.Fatalf("nil slice = %s, want []", got)
	}
	if got := ToJSONList([]string{"wifi", "ac"}); string(got) != `["wifi","ac"]` {
		t.Fatalf("got %s", got)
	}
}

func TestIsValidValueOfConstant(t *testing.T) {
	genders := []string{"male", "female", "any"}
	if !IsValidValueOfConstant("any", genders) {
		t.Fatal("any should be valid")
	}
	if IsValidValueOfConstant("Any", genders) {
		t.Fatal("match is exact, Any should be rejected")
	}
}

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("https://example.com/listings/kost-mawar", 256)
	if err != nil {
		t.Fatalf("GenerateQRCode: %v", err)
	}
	pngHeader := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(data, pngHeader) {
		t.Fatalf("output is not a PNG, first bytes: %v", data[:4])
	}
}

package locate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestMatchesAcrossNormalizationForms(t *testing.T) {
	name := "서울고_환경데이터.csv"
	keyword := "환경데이터"

	forms := func(s string) []string {
		return []string{norm.NFC.String(s), norm.NFD.String(s)}
	}

	// Every pairing of stored form and query form must match.
	for _, n := range forms(name) {
		for _, k := range forms(keyword) {
			if !Matches(n, k) {
				t.Errorf("Matches(%q, %q) = false, want true", n, k)
			}
		}
	}
}

func TestMatchesRejectsUnrelatedName(t *testing.T) {
	if Matches("생육결과데이터.xlsx", "환경데이터") {
		t.Error("unrelated name matched")
	}
}

func TestFindResolvesNFDFileFromNFCKeyword(t *testing.T) {
	dir := t.TempDir()
	stored := norm.NFD.String("대전고_생육결과데이터.xlsx")
	if err := os.WriteFile(filepath.Join(dir, stored), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Find(dir, norm.NFC.String("생육결과데이터"))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != stored {
		t.Errorf("Find = %q, want %q", got, stored)
	}
}

func TestFindResolvesNFCFileFromNFDKeyword(t *testing.T) {
	dir := t.TempDir()
	stored := norm.NFC.String("대전고_생육결과데이터.xlsx")
	if err := os.WriteFile(filepath.Join(dir, stored), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Find(dir, norm.NFD.String("생육결과데이터"))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != stored {
		t.Errorf("Find = %q, want %q", got, stored)
	}
}

func TestFindNotFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Find(dir, "환경데이터")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFindSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "환경데이터"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Find(dir, "환경데이터")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("directory entry should not match, got err = %v", err)
	}
}

func TestCanonicalIsNFC(t *testing.T) {
	nfd := norm.NFD.String("한밭고")
	if got := Canonical(nfd); got != norm.NFC.String("한밭고") {
		t.Errorf("Canonical(%q) = %q", nfd, got)
	}
}

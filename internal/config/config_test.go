package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DBPath != "versemate-seed.db" {
		t.Fatalf("db = %q", cfg.App.DBPath)
	}
	if cfg.App.Translation != "NASB1995" {
		t.Fatalf("translation = %q", cfg.App.Translation)
	}
	if cfg.App.Language != "en" {
		t.Fatalf("language = %q", cfg.App.Language)
	}
	if cfg.App.Book != 0 || cfg.App.Chapter != 0 {
		t.Fatalf("expected no start position, got %d:%d", cfg.App.Book, cfg.App.Chapter)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	environ := []string{
		"VERSEMATE_DB=env.db",
		"VERSEMATE_TRANSLATION=KJV",
		"VERSEMATE_FOOTER=true",
	}
	cfg, err := LoadArgs([]string{"--db", "flag.db", "--book", "43", "--chapter", "3"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.DBPath != "flag.db" {
		t.Fatalf("db = %q, want flag value to win", cfg.App.DBPath)
	}
	if cfg.App.Translation != "KJV" {
		t.Fatalf("translation = %q, want env fallback", cfg.App.Translation)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer from env")
	}
	if cfg.App.Book != 43 || cfg.App.Chapter != 3 {
		t.Fatalf("start = %d:%d", cfg.App.Book, cfg.App.Chapter)
	}
}

func TestLoadArgsRejectsPartialPosition(t *testing.T) {
	if _, err := LoadArgs([]string{"--book", "1"}, nil); err == nil {
		t.Fatalf("expected error for book without chapter")
	}
	if _, err := LoadArgs([]string{"--chapter", "5"}, nil); err == nil {
		t.Fatalf("expected error for chapter without book")
	}
}

func TestLoadArgsRejectsBadValues(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--book", "67", "--chapter", "1"}, nil); err == nil {
		t.Fatalf("expected error for book out of range")
	}
}

func TestValidateRequiresDB(t *testing.T) {
	cfg, err := LoadArgs([]string{"--db", " "}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation error for blank db path")
	}
}

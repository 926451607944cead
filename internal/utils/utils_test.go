package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatTotalDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0:00:00"},
		{59 * time.Second, "0:00:59"},
		{355 * time.Second, "0:05:55"},
		{61*time.Minute + 1*time.Second, "1:01:01"},
		{23*time.Hour + 59*time.Minute + 59*time.Second, "23:59:59"},
		{24 * time.Hour, "1 day, 0:00:00"},
		{49*time.Hour + 30*time.Second, "2 days, 1:00:30"},
	}

	for _, test := range tests {
		result := FormatTotalDuration(test.duration)
		if result != test.expected {
			t.Errorf("FormatTotalDuration(%v) = %s; expected %s", test.duration, result, test.expected)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"abcde", 4, "a..."},
		{"Классическая", 8, "Класс..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%s, %d) = %s; expected %s", test.input, test.maxLen, result, test.expected)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Домашний каталог недоступен: %v", err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/.playlist.json", filepath.Join(home, ".playlist.json")},
		{"~", home},
		{"/tmp/playlist.json", "/tmp/playlist.json"},
		{"relative/~file.json", "relative/~file.json"},
	}

	for _, test := range tests {
		result, err := ExpandHome(test.input)
		if err != nil {
			t.Errorf("ExpandHome(%s) вернул ошибку: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("ExpandHome(%s) = %s; expected %s", test.input, result, test.expected)
		}
	}
}

package mimetypes

import (
	"testing"
)

func TestFromDeclared(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		want     MIME
		wantOK   bool
	}{
		{"CSV", "text/csv", TextCSV, true},
		{"CSV with charset", "text/csv; charset=utf-8", TextCSV, true},
		{"CSV application alias", "application/csv", TextCSV, true},
		{"XLSX", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ApplicationXLSX, true},

		// Rejected before parsing is even attempted
		{"PDF", "application/pdf", Unknown, false},
		{"Plain text", "text/plain; charset=utf-8", Unknown, false},
		{"Legacy XLS", "application/vnd.ms-excel", Unknown, false},
		{"Invalid MIME", "not a mime", Unknown, false},
		{"Empty", "", Unknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromDeclared(tt.declared)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FromDeclared(%q) = (%q, %v); want (%q, %v)", tt.declared, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSniff(t *testing.T) {
	t.Run("CSV bytes sniff as CSV", func(t *testing.T) {
		got, ok := Sniff([]byte("correo,nombre,mensaje\na@x.com,Ana,Hola\n"))
		if !ok || got != TextCSV {
			t.Errorf("Sniff(csv bytes) = (%q, %v); want (%q, true)", got, ok, TextCSV)
		}
	})

	t.Run("Binary junk is unknown", func(t *testing.T) {
		got, ok := Sniff([]byte{0x00, 0x01, 0x02, 0x03, 0xFF})
		if ok || got != Unknown {
			t.Errorf("Sniff(binary) = (%q, %v); want (%q, false)", got, ok, Unknown)
		}
	})
}

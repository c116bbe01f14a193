package registry

import (
	"io"
	"testing"
)

type stubExporter struct{ id string }

func (s stubExporter) ID() string        { return s.id }
func (s stubExporter) Title() string     { return "Stub " + s.id }
func (s stubExporter) Extension() string { return ".stub" }

func (s stubExporter) Export(w io.Writer, _ Job) error {
	_, err := io.WriteString(w, s.id)
	return err
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", func() Exporter { return stubExporter{"test_b"} })
	Register("test_a", func() Exporter { return stubExporter{"test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists() reports the wrong set")
	}

	e, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if e.ID() != "test_b" {
		t.Errorf("created %q", e.ID())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("test_z", func() Exporter { return stubExporter{"test_z"} })
	Register("test_m", func() Exporter { return stubExporter{"test_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}

	for _, info := range list {
		if info.ID == "test_m" && (info.Title != "Stub test_m" || info.Extension != ".stub") {
			t.Errorf("info = %+v", info)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Exporter { return stubExporter{"test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("test_dup", func() Exporter { return stubExporter{"test_dup"} })
}

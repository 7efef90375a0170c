package repository

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeMasterDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"customer_master.csv": "customer_name\nACME FORGE\nBHEL\n",
		"machine_master.csv":  "machine_name\nCNC-01\nVMC-02\n",
		"operator_master.csv": "operator_name\nRAVI\nSUNIL\n",
		"shift_master.csv":    "shift\nA\nB\nC\n",
		"part_master.csv": "part_no,part_description,size,grade\n" +
			"P-100,FLANGE 2IN,2IN,SS304\n" +
			"P-200,,M16,EN8\n",
		"process_sheet.csv": "part_no,process_name\n" +
			"P-100,CNC TURNING\n" +
			"P-100,DRILLING\n" +
			"P-200,FORGING\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadMasters(t *testing.T) {
	m, err := LoadMasters(writeMasterDir(t))
	if err != nil {
		t.Fatalf("LoadMasters() error: %v", err)
	}

	if got, want := m.Customers(), []string{"ACME FORGE", "BHEL"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Customers() = %v, want %v", got, want)
	}
	if got, want := m.Machines(), []string{"CNC-01", "VMC-02"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Machines() = %v, want %v", got, want)
	}
	if got, want := m.Operators(), []string{"RAVI", "SUNIL"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Operators() = %v, want %v", got, want)
	}
	if got, want := m.Shifts(), []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Shifts() = %v, want %v", got, want)
	}
}

func TestLoadMastersParts(t *testing.T) {
	m, err := LoadMasters(writeMasterDir(t))
	if err != nil {
		t.Fatalf("LoadMasters() error: %v", err)
	}

	p, ok := m.PartByNo("P-100")
	if !ok {
		t.Fatal("PartByNo(P-100) not found")
	}
	want := Part{PartNo: "P-100", Description: "FLANGE 2IN", Size: "2IN", Grade: "SS304"}
	if p != want {
		t.Errorf("PartByNo(P-100) = %+v, want %+v", p, want)
	}

	// blank description reads as an em dash placeholder
	p, ok = m.PartByNo("P-200")
	if !ok {
		t.Fatal("PartByNo(P-200) not found")
	}
	if p.Description != "—" {
		t.Errorf("blank description = %q, want em dash placeholder", p.Description)
	}

	if _, ok := m.PartByNo("P-999"); ok {
		t.Error("PartByNo(P-999) found, want missing")
	}
}

func TestLoadMastersProcessSheet(t *testing.T) {
	m, err := LoadMasters(writeMasterDir(t))
	if err != nil {
		t.Fatalf("LoadMasters() error: %v", err)
	}

	if got, want := m.ProcessSteps("P-100"), []string{"CNC TURNING", "DRILLING"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ProcessSteps(P-100) = %v, want %v", got, want)
	}
	if got := m.ProcessSteps("P-999"); len(got) != 0 {
		t.Errorf("ProcessSteps(P-999) = %v, want empty", got)
	}
}

func TestLoadMastersMissingFile(t *testing.T) {
	dir := t.TempDir() // no master files at all
	if _, err := LoadMasters(dir); err == nil {
		t.Error("LoadMasters() on empty dir succeeded, want error")
	}
}

package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Part is one row of the part master.
type Part struct {
	PartNo      string
	Description string
	Size        string
	Grade       string
}

// MasterRepository is the read-only master-data catalog the UI populates its
// selection inputs from. Loaded once at startup; immutable afterwards.
type MasterRepository interface {
	Customers() []string
	Machines() []string
	Operators() []string
	Shifts() []string
	Parts() []Part
	// PartByNo returns the part master row for partNo, or ok=false.
	PartByNo(partNo string) (Part, bool)
	// ProcessSteps returns the process steps valid for partNo, in sheet order.
	ProcessSteps(partNo string) []string
}

type masterCatalog struct {
	customers []string
	machines  []string
	operators []string
	shifts    []string
	parts     []Part
	partIndex map[string]Part
	processes map[string][]string // part_no → process names
}

// LoadMasters reads the six master CSV files from dir:
// customer_master.csv, part_master.csv, process_sheet.csv,
// machine_master.csv, operator_master.csv, shift_master.csv.
func LoadMasters(dir string) (MasterRepository, error) {
	c := &masterCatalog{
		partIndex: make(map[string]Part),
		processes: make(map[string][]string),
	}

	var err error
	if c.customers, err = loadNameColumn(filepath.Join(dir, "customer_master.csv")); err != nil {
		return nil, err
	}
	if c.machines, err = loadNameColumn(filepath.Join(dir, "machine_master.csv")); err != nil {
		return nil, err
	}
	if c.operators, err = loadNameColumn(filepath.Join(dir, "operator_master.csv")); err != nil {
		return nil, err
	}
	if c.shifts, err = loadNameColumn(filepath.Join(dir, "shift_master.csv")); err != nil {
		return nil, err
	}
	if err = c.loadParts(filepath.Join(dir, "part_master.csv")); err != nil {
		return nil, err
	}
	if err = c.loadProcessSheet(filepath.Join(dir, "process_sheet.csv")); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *masterCatalog) Customers() []string { return c.customers }
func (c *masterCatalog) Machines() []string  { return c.machines }
func (c *masterCatalog) Operators() []string { return c.operators }
func (c *masterCatalog) Shifts() []string    { return c.shifts }
func (c *masterCatalog) Parts() []Part       { return c.parts }

func (c *masterCatalog) PartByNo(partNo string) (Part, bool) {
	p, ok := c.partIndex[partNo]
	return p, ok
}

func (c *masterCatalog) ProcessSteps(partNo string) []string {
	return c.processes[partNo]
}

// loadNameColumn reads the first column of a single-list master, skipping the
// header row.
func loadNameColumn(path string) ([]string, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		names = append(names, strings.TrimSpace(row[0]))
	}
	return names, nil
}

// loadParts reads part_master.csv with columns
// part_no, part_description, size, grade. A blank description reads as "—",
// matching what the form shows for parts without one.
func (c *masterCatalog) loadParts(path string) error {
	rows, err := readCSV(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 4 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		p := Part{
			PartNo:      strings.TrimSpace(row[0]),
			Description: strings.TrimSpace(row[1]),
			Size:        strings.TrimSpace(row[2]),
			Grade:       strings.TrimSpace(row[3]),
		}
		if p.Description == "" {
			p.Description = "—"
		}
		c.parts = append(c.parts, p)
		c.partIndex[p.PartNo] = p
	}
	return nil
}

// loadProcessSheet reads process_sheet.csv with columns part_no, process_name.
func (c *masterCatalog) loadProcessSheet(path string) error {
	rows, err := readCSV(path)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		partNo := strings.TrimSpace(row[0])
		c.processes[partNo] = append(c.processes[partNo], strings.TrimSpace(row[1]))
	}
	return nil
}

// readCSV returns the data rows of a master file (header skipped).
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open master %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read master %s: %w", filepath.Base(path), err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

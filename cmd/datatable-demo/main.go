package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hnimtadd/datatable"
	"github.com/hnimtadd/datatable/body/column"
	"github.com/hnimtadd/datatable/body/layout"
	"github.com/hnimtadd/datatable/body/node"
	"github.com/hnimtadd/datatable/internal/demo"
	"github.com/hnimtadd/datatable/logger"
)

type employee struct {
	ID       int
	Name     string
	Team     string
	Email    string `table:"email"`
	Location string `table:"city"`
	Age      int
	Archived bool
}

var employees = []employee{
	{1, "Ada Lovelace", "Compilers", "ada@example.com", "London", 36, false},
	{2, "Grace Hopper", "Compilers", "grace@example.com", "Arlington", 85, false},
	{3, "Linus Torvalds", "Kernel", "linus@example.com", "Helsinki", 54, false},
	{4, "Nguyễn Thị Minh", "Payments", "minh@example.com", "Hồ Chí Minh", 29, false},
	{5, "Ken Thompson", "Kernel", "ken@example.com", "New Orleans", 81, true},
	{6, "Barbara Liskov", "Distributed", "barbara@example.com", "Los Angeles", 84, false},
	{7, "山田 太郎", "Search", "taro@example.com", "東京", 41, false},
	{8, "Margaret Hamilton", "Flight", "margaret@example.com", "Paoli", 88, true},
	{9, "Dennis Ritchie", "Kernel", "dennis@example.com", "Bronxville", 70, false},
	{10, "Frances Allen", "Compilers", "frances@example.com", "Peru", 88, false},
	{11, "John Backus", "Compilers", "john@example.com", "Philadelphia", 82, false},
	{12, "Radia Perlman", "Networking", "radia@example.com", "Portsmouth", 73, false},
}

func columns() []column.Descriptor {
	sel := column.Selection("selection")
	sel.Fixed = column.FixedLeft
	sel.Disabled = func(raw any) bool { return raw.(employee).Archived }

	return []column.Descriptor{
		sel,
		{Key: "name", Title: "Name", Fixed: column.FixedLeft, Width: 18, Ellipsis: true},
		{Key: "team", Title: "Team", Width: 12},
		{Key: "email", Title: "Email", Width: 22, Ellipsis: true},
		{Key: "city", Title: "City", Width: 14, Ellipsis: true},
		{Key: "age", Title: "Age", Fixed: column.FixedRight, Width: 5, Align: column.AlignRight},
	}
}

func newLogger() (logger.Logger, func(), error) {
	path := os.Getenv("DATATABLE_LOG")
	if path == "" {
		return logger.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logger.New(logger.Options{Buffer: f, Level: logger.DebugLevel, Type: logger.TypeJSON})
	return log, func() { _ = f.Close() }, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func run() error {
	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	rows := make([]*node.Node, len(employees))
	for i, e := range employees {
		rows[i] = node.New(node.IntKey(e.ID), e)
	}

	body, err := datatable.New(datatable.Options{
		Columns:  columns(),
		Data:     rows,
		PageSize: 5,
		RowClassName: layout.RowClassFunc(func(raw any, _ int) string {
			if raw.(employee).Archived {
				return "archived"
			}
			return ""
		}),
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	m := demo.New(demo.Options{
		Body:   body,
		Width:  60,
		Height: 10,
		Output: os.Stdout,
		Logger: log,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

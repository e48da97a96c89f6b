package analysis

import (
	"github.com/xiaobogaga/jmm/compiler/internal/logger"
	"github.com/xiaobogaga/jmm/compiler/internal/report"
)

// Pass is a semantic analysis pass over one class.
type Pass interface {
	Analyze(root *Node, table SymbolTable) []report.Report
}

func DefaultPasses() []Pass {
	return []Pass{NewStatementAnalyzer(DefaultPolicy())}
}

// Analyze runs passes over root, or the default passes when none are given, and returns every report
// in the order found. The tree and the table are only read.
func Analyze(root *Node, table SymbolTable, passes ...Pass) []report.Report {
	if len(passes) == 0 {
		passes = DefaultPasses()
	}
	var reports []report.Report
	for _, pass := range passes {
		found := pass.Analyze(root, table)
		logger.Debug("analysis: pass finished", "class", table.ClassName(), "reports", len(found))
		reports = append(reports, found...)
	}
	return reports
}

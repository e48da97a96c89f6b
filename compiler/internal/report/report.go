package report

import "fmt"

// Report is a single finding of a compiler pass. Reports are kept in the order they are found.
type Report struct {
	Type    ReportType
	Stage   Stage
	Line    int
	Column  int
	Message string
}

type ReportType int

const (
	ErrorReport ReportType = iota
	WarningReport
	LogReport
)

func (tp ReportType) String() string {
	switch tp {
	case ErrorReport:
		return "ERROR"
	case WarningReport:
		return "WARNING"
	case LogReport:
		return "LOG"
	}
	return "UNKNOWN"
}

type Stage int

const (
	SemanticStage Stage = iota
	GenerationStage
)

func (s Stage) String() string {
	switch s {
	case SemanticStage:
		return "SEMANTIC"
	case GenerationStage:
		return "GENERATION"
	}
	return "UNKNOWN"
}

func NewError(stage Stage, line, column int, format string, args ...interface{}) Report {
	return Report{
		Type:    ErrorReport,
		Stage:   stage,
		Line:    line,
		Column:  column,
		Message: fmt.Sprintf(format, args...),
	}
}

func (r Report) String() string {
	return fmt.Sprintf("%s %s %d:%d %s", r.Type, r.Stage, r.Line, r.Column, r.Message)
}

// Errors returns the error reports of reports, keeping their order.
func Errors(reports []Report) []Report {
	var ret []Report
	for _, r := range reports {
		if r.Type == ErrorReport {
			ret = append(ret, r)
		}
	}
	return ret
}

package ports

import "github.com/bnema/netrun/internal/domain"

// OutputSink receives every record appended to the terminal output.
type OutputSink interface {
	Write(record domain.Record)
}

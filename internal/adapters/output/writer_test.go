package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

func TestWriter_WriteReport_OK(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	writer := NewWriterWithOutput(&buf)
	report := &domain.BatchReport{
		BatchID:   "b-1",
		Status:    domain.StatusOK,
		Requested: 3,
		Written:   []int{0, 1, 2},
	}

	// Act
	err := writer.WriteReport(report)

	// Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "OK", lines[0], "the first line is the bare status")
	assert.Equal(t, "batch=b-1 requested=3 written=3 slow=0", lines[1])
}

func TestWriter_WriteReport_SlowPath(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriterWithOutput(&buf)
	report := &domain.BatchReport{
		BatchID:   "b-2",
		Status:    domain.StatusOK,
		Requested: 2,
		Written:   []int{0, 1},
		SlowPath:  []string{"Sparky", "Wanderer"},
	}

	err := writer.WriteReport(report)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "slow=2")
	assert.Contains(t, buf.String(), "slow-path: Sparky, Wanderer")
}

func TestWriter_WriteReport_Rejected(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriterWithOutput(&buf)
	report := &domain.BatchReport{
		BatchID:   "b-3",
		Status:    domain.StatusRejectedTemplate,
		Requested: 4,
		Written:   []int{0, 1},
		Rejected:  "Broken",
	}

	err := writer.WriteReport(report)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "REJECTED_TEMPLATE", lines[0])
	assert.Equal(t, "rejected: Broken", lines[2])
}

func TestWriter_WriteReport_InsufficientCapacity(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriterWithOutput(&buf)
	report := &domain.BatchReport{
		BatchID:   "b-4",
		Status:    domain.StatusInsufficientCapacity,
		Requested: 5,
	}

	err := writer.WriteReport(report)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "INSUFFICIENT_CAPACITY", lines[0])
	assert.Equal(t, "batch=b-4 requested=5 written=0 slow=0", lines[1])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWriter_WriteReport_PropagatesWriteError(t *testing.T) {
	writer := NewWriterWithOutput(failingWriter{})

	err := writer.WriteReport(&domain.BatchReport{Status: domain.StatusOK})

	assert.ErrorIs(t, err, assert.AnError)
}

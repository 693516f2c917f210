package history

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoOwner is returned when a save is attempted without an owning
// profile. Papers are never persisted anonymously.
var ErrNoOwner = errors.New("paper has no owner")

// ErrNotAvailable is returned when a paper does not exist or belongs
// to a different profile. Callers cannot distinguish the two cases.
var ErrNotAvailable = errors.New("paper not available")

// QuestionRecord is one question of a stored paper, with the answer
// the owner picked. SelectedAnswer is nil when the question was left
// unanswered.
type QuestionRecord struct {
	Text           string
	Options        []string
	CorrectAnswer  int
	Explanation    string
	SelectedAnswer *int
}

// PaperRecord is a submitted paper as persisted: the questions, the
// owner's answers, and the graded score.
type PaperRecord struct {
	ID           string
	OwnerID      string
	Title        string
	Subject      string
	Topics       []string
	Difficulty   string
	NumQuestions int
	Questions    []QuestionRecord
	Score        int
	CreatedAt    time.Time
}

// DisplayTitle returns the explicit title, or "Subject - Difficulty"
// when none was set.
func (r *PaperRecord) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return fmt.Sprintf("%s - %s", r.Subject, r.Difficulty)
}

// PaperSummary is the listing shape of a stored paper, without the
// question payload.
type PaperSummary struct {
	ID            string
	Title         string
	Subject       string
	Difficulty    string
	Score         int
	QuestionCount int
	CreatedAt     time.Time
}

// DisplayTitle returns the explicit title, or "Subject - Difficulty"
// when none was set.
func (s PaperSummary) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf("%s - %s", s.Subject, s.Difficulty)
}

// PaperRepo manages stored papers. All reads are scoped to an owner.
type PaperRepo interface {
	// Save persists a paper and returns its record ID. The record
	// must carry an OwnerID; ErrNoOwner otherwise.
	Save(ctx context.Context, rec *PaperRecord) (string, error)

	// ListByOwner returns the owner's papers, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]PaperSummary, error)

	// GetByID returns one paper. Absent papers and papers owned by a
	// different profile both yield ErrNotAvailable.
	GetByID(ctx context.Context, ownerID, id string) (*PaperRecord, error)

	// DeleteByOwner removes every paper belonging to the owner and
	// returns how many were deleted.
	DeleteByOwner(ctx context.Context, ownerID string) (int, error)
}

// UserRecord is a local profile.
type UserRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// UserRepo manages local profiles.
type UserRepo interface {
	// GetOrCreate returns the profile with the given name, creating
	// it on first use.
	GetOrCreate(ctx context.Context, name string) (*UserRecord, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates token usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching opts, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates successful-call token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates successful-call token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

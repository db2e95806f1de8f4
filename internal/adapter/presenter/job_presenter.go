package presenter

import (
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ToJobResponse converts a Job entity to JobResponse DTO
func ToJobResponse(j *entities.Job) *notes.JobResponse {
	if j == nil {
		return nil
	}

	response := &notes.JobResponse{
		ID:          j.ID.String(),
		Type:        string(j.Type),
		Status:      string(j.Status),
		RetryCount:  j.RetryCount,
		MaxRetries:  j.MaxRetries,
		LastError:   j.LastError,
		StartedAt:   j.StartedAt,
		CompletedAt: j.CompletedAt,
		CreatedAt:   j.CreatedAt,
	}

	// Result only carries data once the job finished cleanly
	if j.Status == entities.JobStatusCompleted {
		response.Result = j.Result
	}

	return response
}

// ToJobListResponse converts a slice of Job entities to JobListResponse
func ToJobListResponse(jobs []*entities.Job) *notes.JobListResponse {
	jobResponses := make([]*notes.JobResponse, len(jobs))
	for i, j := range jobs {
		jobResponses[i] = ToJobResponse(j)
	}

	return &notes.JobListResponse{
		Jobs:  jobResponses,
		Total: len(jobs),
	}
}

package presenter

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// jsonStrings decodes a jsonb string array column, returning nil on empty
// or malformed payloads so omitempty drops the field.
func jsonStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *notes.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &notes.MeetingResponse{
		ID:              m.ID.String(),
		Title:           m.Title,
		MeetingType:     m.MeetingType,
		MeetingDate:     m.MeetingDate,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		DurationMin:     m.DurationMin,
		Location:        m.Location,
		SourcePath:      m.SourcePath,
		NextMeetingDate: m.NextMeetingDate,
		NextMeetingTime: m.NextMeetingTime,
		Agenda:          jsonStrings(m.Agenda),
		Warnings:        jsonStrings(m.Warnings),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	// Include children if loaded
	for i := range m.Attendees {
		response.Attendees = append(response.Attendees, ToAttendeeResponse(&m.Attendees[i]))
	}
	for i := range m.Topics {
		response.Topics = append(response.Topics, ToTopicResponse(&m.Topics[i]))
	}
	for i := range m.ActionItems {
		response.ActionItems = append(response.ActionItems, ToActionItemResponse(&m.ActionItems[i]))
	}
	for i := range m.Decisions {
		response.Decisions = append(response.Decisions, ToDecisionResponse(&m.Decisions[i]))
	}
	for i := range m.Blockers {
		response.Blockers = append(response.Blockers, ToBlockerResponse(&m.Blockers[i]))
	}

	return response
}

// ToMeetingSummaryResponse converts a Meeting entity to its list-view shape
func ToMeetingSummaryResponse(m *entities.Meeting) *notes.MeetingSummaryResponse {
	if m == nil {
		return nil
	}

	return &notes.MeetingSummaryResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		MeetingType: m.MeetingType,
		MeetingDate: m.MeetingDate,
		Attendees:   len(m.Attendees),
		Topics:      len(m.Topics),
		ActionItems: len(m.ActionItems),
		Decisions:   len(m.Decisions),
		HasWarnings: m.HasWarnings(),
		CreatedAt:   m.CreatedAt,
	}
}

// ToMeetingListResponse converts a slice of Meeting entities to MeetingListResponse
func ToMeetingListResponse(meetings []*entities.Meeting, total int64, page, pageSize int) *notes.MeetingListResponse {
	meetingResponses := make([]*notes.MeetingSummaryResponse, len(meetings))
	for i, m := range meetings {
		meetingResponses[i] = ToMeetingSummaryResponse(m)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &notes.MeetingListResponse{
		Meetings:   meetingResponses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// ToAttendeeResponse converts a MeetingAttendee entity to AttendeeResponse DTO.
// The deduplicated person record supplies the canonical spelling and fills
// in email or role when the roster line omitted them.
func ToAttendeeResponse(a *entities.MeetingAttendee) *notes.AttendeeResponse {
	if a == nil {
		return nil
	}

	response := &notes.AttendeeResponse{
		Name:  a.RawName,
		Email: a.Email,
		Role:  a.Role,
	}

	if a.Person != nil {
		if a.Person.Name != "" {
			response.Name = a.Person.Name
		}
		if response.Email == nil {
			response.Email = a.Person.Email
		}
		if response.Role == nil {
			response.Role = a.Person.Role
		}
	}

	return response
}

// ToTopicResponse converts a Topic entity to TopicResponse DTO
func ToTopicResponse(t *entities.Topic) *notes.TopicResponse {
	if t == nil {
		return nil
	}

	return &notes.TopicResponse{
		Heading: t.Heading,
		Bullets: jsonStrings(t.Bullets),
	}
}

// ToActionItemResponse converts an ActionItem entity to ActionItemResponse DTO
func ToActionItemResponse(a *entities.ActionItem) *notes.ActionItemResponse {
	if a == nil {
		return nil
	}

	response := &notes.ActionItemResponse{
		ID:                a.ID.String(),
		MeetingID:         a.MeetingID.String(),
		Owner:             a.Owner,
		Description:       a.Description,
		Priority:          a.Priority,
		DueDate:           a.DueDate,
		Status:            a.Status,
		GithubIssueNumber: a.GithubIssueNumber,
		GithubIssueURL:    a.GithubIssueURL,
		CreatedAt:         a.CreatedAt,
	}

	// Prefer the canonical spelling when the owner resolved to a person
	if a.Person != nil && a.Person.Name != "" {
		response.Owner = &a.Person.Name
	}

	// Include meeting context if loaded
	if a.Meeting != nil {
		response.MeetingTitle = a.Meeting.Title
	}

	return response
}

// ToActionListResponse converts a slice of ActionItem entities to ActionListResponse
func ToActionListResponse(items []*entities.ActionItem, total int64) *notes.ActionListResponse {
	actionResponses := make([]*notes.ActionItemResponse, len(items))
	for i, a := range items {
		actionResponses[i] = ToActionItemResponse(a)
	}

	return &notes.ActionListResponse{
		Actions: actionResponses,
		Total:   total,
	}
}

// ToDecisionResponse converts a Decision entity to DecisionResponse DTO
func ToDecisionResponse(d *entities.Decision) *notes.DecisionResponse {
	if d == nil {
		return nil
	}

	return &notes.DecisionResponse{
		Text: d.Text,
	}
}

// ToBlockerResponse converts a Blocker entity to BlockerResponse DTO
func ToBlockerResponse(b *entities.Blocker) *notes.BlockerResponse {
	if b == nil {
		return nil
	}

	return &notes.BlockerResponse{
		ID:         b.ID.String(),
		MeetingID:  b.MeetingID.String(),
		Text:       b.Text,
		Resolved:   b.Resolved,
		ResolvedAt: b.ResolvedAt,
	}
}

// ToBlockerListResponse converts a slice of Blocker entities to BlockerListResponse
func ToBlockerListResponse(blockers []*entities.Blocker) *notes.BlockerListResponse {
	blockerResponses := make([]*notes.BlockerResponse, len(blockers))
	for i, b := range blockers {
		blockerResponses[i] = ToBlockerResponse(b)
	}

	return &notes.BlockerListResponse{
		Blockers: blockerResponses,
		Total:    len(blockers),
	}
}

// ToPersonResponse converts a Person entity to PersonResponse DTO
func ToPersonResponse(p *entities.Person) *notes.PersonResponse {
	if p == nil {
		return nil
	}

	return &notes.PersonResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
	}
}

// ToPersonListResponse converts a slice of Person entities to PersonListResponse
func ToPersonListResponse(people []*entities.Person, total int64) *notes.PersonListResponse {
	personResponses := make([]*notes.PersonResponse, len(people))
	for i, p := range people {
		personResponses[i] = ToPersonResponse(p)
	}

	return &notes.PersonListResponse{
		People: personResponses,
		Total:  total,
	}
}

// ToDocumentResponse converts a Document entity to DocumentResponse DTO
func ToDocumentResponse(d *entities.Document) *notes.DocumentResponse {
	if d == nil {
		return nil
	}

	response := &notes.DocumentResponse{
		ID:         d.ID.String(),
		SourcePath: d.SourcePath,
		Filename:   d.Filename,
		Origin:     string(d.Origin),
		SizeBytes:  d.SizeBytes,
		CreatedAt:  d.CreatedAt,
	}

	// MeetingID might be nil for documents that failed extraction
	if d.MeetingID != nil {
		meetingIDStr := d.MeetingID.String()
		response.MeetingID = &meetingIDStr
	}

	return response
}

// ToDocumentListResponse converts a slice of Document entities to DocumentListResponse
func ToDocumentListResponse(documents []*entities.Document, total int64) *notes.DocumentListResponse {
	documentResponses := make([]*notes.DocumentResponse, len(documents))
	for i, d := range documents {
		documentResponses[i] = ToDocumentResponse(d)
	}

	return &notes.DocumentListResponse{
		Documents: documentResponses,
		Total:     total,
	}
}

// ToIngestResponse wraps an ingested meeting with its change flags
func ToIngestResponse(m *entities.Meeting, created, updated, unchanged bool) *notes.IngestResponse {
	response := &notes.IngestResponse{
		Meeting:   ToMeetingResponse(m),
		Created:   created,
		Updated:   updated,
		Unchanged: unchanged,
	}

	if response.Meeting != nil {
		response.Warnings = response.Meeting.Warnings
	}

	return response
}

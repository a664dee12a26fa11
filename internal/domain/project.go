package domain

// Project is a single research-project record.
//
// Dates are kept in ISO form (YYYY-MM-DD) exactly as entered; formatting for
// display happens in the presenter package.
type Project struct {
	ID          int
	Title       string
	Description string
	Objectives  string
	Owner       string
	Area        string
	StartDate   string
	EndDate     string
	Status      ProjectStatus
	Progress    int
	Funding     string
	Results     string
}

// Clone returns a shallow copy of p. Project holds only value fields, so the
// copy shares no state with the original.
func (p *Project) Clone() *Project {
	c := *p
	return &c
}

// SyncProgress recomputes Progress from Status.
func (p *Project) SyncProgress() {
	p.Progress = ProgressFor(p.Status)
}

// ProjectPatch describes a partial update. Nil fields are left untouched;
// set fields overwrite the stored value.
type ProjectPatch struct {
	Title       *string
	Description *string
	Objectives  *string
	Owner       *string
	Area        *string
	StartDate   *string
	EndDate     *string
	Status      *ProjectStatus
	Funding     *string
	Results     *string
}

// Apply merges the patch into p and re-derives progress.
func (pp ProjectPatch) Apply(p *Project) {
	p.Title = StrFromPtrWithDefault(p.Title, pp.Title)
	p.Description = StrFromPtrWithDefault(p.Description, pp.Description)
	p.Objectives = StrFromPtrWithDefault(p.Objectives, pp.Objectives)
	p.Owner = StrFromPtrWithDefault(p.Owner, pp.Owner)
	p.Area = StrFromPtrWithDefault(p.Area, pp.Area)
	p.StartDate = StrFromPtrWithDefault(p.StartDate, pp.StartDate)
	p.EndDate = StrFromPtrWithDefault(p.EndDate, pp.EndDate)
	p.Status = StatusFromPtrWithDefault(p.Status, pp.Status)
	p.Funding = StrFromPtrWithDefault(p.Funding, pp.Funding)
	p.Results = StrFromPtrWithDefault(p.Results, pp.Results)
	p.SyncProgress()
}

// IsEmpty reports whether the patch sets no fields.
func (pp ProjectPatch) IsEmpty() bool {
	return pp == ProjectPatch{}
}

// FullPatch returns a patch that overwrites every editable field of a
// project with the values from p.
func FullPatch(p *Project) ProjectPatch {
	status := p.Status
	return ProjectPatch{
		Title:       &p.Title,
		Description: &p.Description,
		Objectives:  &p.Objectives,
		Owner:       &p.Owner,
		Area:        &p.Area,
		StartDate:   &p.StartDate,
		EndDate:     &p.EndDate,
		Status:      &status,
		Funding:     &p.Funding,
		Results:     &p.Results,
	}
}

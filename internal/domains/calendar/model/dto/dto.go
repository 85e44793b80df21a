package dto

import (
	"calgrid/internal/domains/calendar/model"
	"calgrid/internal/grid"
	"time"
)

// DateTimeLayout renders wall-clock times. They carry no zone on purpose.
const DateTimeLayout = "2006-01-02T15:04:05"

const (
	GestureDrag   = "drag"
	GestureResize = "resize"

	OutcomeCommitted = "committed"
	OutcomeDiscarded = "discarded"
	OutcomeCancelled = "cancelled"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) ToGrid() grid.Point {
	return grid.Point{X: p.X, Y: p.Y}
}

// Viewport describes the client's scroll area so column hit-testing and menu
// clamping match what the user sees.
type Viewport struct {
	ScrollLeft float64 `json:"scroll_left" validate:"gte=0"`
	AreaLeft   float64 `json:"area_left"   validate:"gte=0"`
	Width      float64 `json:"width"       validate:"gte=0"`
	Height     float64 `json:"height"      validate:"gte=0"`
}

// Scope identifies the salon day every request addresses. It is filled from the path and auth context.
type Scope struct {
	SalonID string `json:"-"`
	Date    string `json:"-"`
	Actor   string `json:"-"`
}

type BoardRequest struct {
	Scope
	Viewport
	Week bool
}

type EventRequest struct {
	Scope
	EventID string
}

type NowRequest struct {
	Scope
}

type GestureRequest struct {
	Scope
	Kind     string   `json:"kind"     validate:"required,oneof=drag resize"`
	EventID  string   `json:"event_id" validate:"required"`
	Press    Point    `json:"press"`
	Moves    []Point  `json:"moves"    validate:"max=500"`
	Release  *Point   `json:"release"`
	Viewport Viewport `json:"viewport"`
}

type SlotClickRequest struct {
	Scope
	ResourceID string   `json:"resource_id" validate:"required"`
	Hour       int      `json:"hour"        validate:"gte=0,lte=23"`
	Half       int      `json:"half"        validate:"gte=0,lte=1"`
	Pointer    Point    `json:"pointer"`
	Viewport   Viewport `json:"viewport"`
}

type SlotActionRequest struct {
	Scope
	ResourceID string `json:"resource_id" validate:"required"`
	Hour       int    `json:"hour"        validate:"gte=0,lte=23"`
	Half       int    `json:"half"        validate:"gte=0,lte=1"`
	Action     string `json:"action"      validate:"required,oneof=booking group-booking block-time"`
}

func formatWall(t time.Time) string {
	return t.Format(DateTimeLayout)
}

type EventResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ClientName      string `json:"client_name,omitempty"`
	ClientPhone     string `json:"client_phone,omitempty"`
	ServiceName     string `json:"service_name,omitempty"`
	MasterName      string `json:"master_name,omitempty"`
	Status          string `json:"status"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
	ResourceID      string `json:"resource_id"`
	BackgroundColor string `json:"background_color,omitempty"`
}

func (r *EventResponse) FromGrid(event grid.Event) {
	r.ID = event.ID
	r.Title = event.Title
	r.ClientName = event.ClientName
	r.ClientPhone = event.ClientPhone
	r.ServiceName = event.ServiceName
	r.MasterName = event.MasterName
	r.Status = event.Status
	r.Start = formatWall(event.Start)
	r.End = formatWall(event.End)
	r.DurationMinutes = int(event.Duration() / time.Minute)
	r.ResourceID = event.ResourceID
	r.BackgroundColor = event.BackgroundColor
}

type SlotResponse struct {
	ResourceID string `json:"resource_id"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

func (r *SlotResponse) FromGrid(slot grid.Slot) {
	r.ResourceID = slot.ResourceID
	r.Start = formatWall(slot.Start)
	r.End = formatWall(slot.End)
}

type ColorsResponse struct {
	Base       string `json:"base"`
	Background string `json:"background"`
	Stripe     string `json:"stripe"`
}

func (r *ColorsResponse) FromGrid(colors grid.Colors) {
	r.Base = colors.Base
	r.Background = colors.Background
	r.Stripe = colors.Stripe
}

type BoxResponse struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r *BoxResponse) FromGrid(box grid.Box) {
	r.Left = box.Left
	r.Top = box.Top
	r.Width = box.Width
	r.Height = box.Height
}

type ResourceResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Color        string            `json:"color,omitempty"`
	Avatar       string            `json:"avatar,omitempty"`
	WorkingHours grid.WorkingHours `json:"working_hours,omitempty"`
}

type CellResponse struct {
	Hour      int     `json:"hour"`
	Half      int     `json:"half"`
	Top       float64 `json:"top"`
	Available bool    `json:"available"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
}

type BlockResponse struct {
	Event   EventResponse  `json:"event"`
	Box     BoxResponse    `json:"box"`
	Colors  ColorsResponse `json:"colors"`
	Hidden  bool           `json:"hidden,omitempty"`
	Past    bool           `json:"past"`
	Ongoing bool           `json:"ongoing"`
	Blocked bool           `json:"blocked"`
}

func (r *BlockResponse) FromGrid(block grid.Block) {
	r.Event.FromGrid(block.Event)
	r.Box.FromGrid(block.Box)
	r.Colors.FromGrid(block.Colors)
	r.Hidden = block.Hidden
	r.Past = block.Past
	r.Ongoing = block.Ongoing
	r.Blocked = block.Blocked
}

type ColumnResponse struct {
	Resource ResourceResponse `json:"resource"`
	Colors   ColorsResponse   `json:"colors"`
	Left     float64          `json:"left"`
	Cells    []CellResponse   `json:"cells"`
	Blocks   []BlockResponse  `json:"blocks"`
}

func (r *ColumnResponse) FromGrid(column grid.Column) {
	r.Resource = ResourceResponse{
		ID:           column.Resource.ID,
		Title:        column.Resource.Title,
		Color:        column.Resource.Color,
		Avatar:       column.Resource.Avatar,
		WorkingHours: column.Resource.WorkingHours,
	}
	r.Colors.FromGrid(column.Colors)
	r.Left = column.Left

	r.Cells = make([]CellResponse, 0, len(column.Cells))
	for _, cell := range column.Cells {
		r.Cells = append(r.Cells, CellResponse{
			Hour:      cell.Hour,
			Half:      cell.Half,
			Top:       cell.Top,
			Available: cell.Available,
			Start:     formatWall(cell.Slot.Start),
			End:       formatWall(cell.Slot.End),
		})
	}

	r.Blocks = make([]BlockResponse, len(column.Blocks))
	for i, block := range column.Blocks {
		r.Blocks[i].FromGrid(block)
	}
}

type TimeLabelResponse struct {
	Hour  int     `json:"hour"`
	Label string  `json:"label"`
	Top   float64 `json:"top"`
}

type WeekDayResponse struct {
	Date       string `json:"date"`
	Name       string `json:"name"`
	IsToday    bool   `json:"is_today"`
	IsSelected bool   `json:"is_selected"`
	IsWeekend  bool   `json:"is_weekend"`
}

type NowResponse struct {
	Visible  bool    `json:"visible"`
	Top      float64 `json:"top"`
	Label    string  `json:"label,omitempty"`
	Timezone string  `json:"timezone"`
	Today    string  `json:"today"`
	IsToday  bool    `json:"is_today"`
}

type BoardResponse struct {
	Date             string              `json:"date"`
	Mode             string              `json:"mode"`
	GridHeight       float64             `json:"grid_height"`
	TimeColumnWidth  float64             `json:"time_column_width"`
	ColumnWidth      float64             `json:"column_width"`
	HeaderScrollLeft float64             `json:"header_scroll_left"`
	TimeLabels       []TimeLabelResponse `json:"time_labels"`
	Columns          []ColumnResponse    `json:"columns"`
	Now              NowResponse         `json:"now"`
	Week             []WeekDayResponse   `json:"week,omitempty"`
}

func (r *NowResponse) FromClock(indicator grid.Indicator, reading grid.Reading, zone string, day time.Time) {
	r.Visible = indicator.Visible
	r.Top = indicator.Top
	r.Label = indicator.Label
	r.Timezone = zone
	r.Today = reading.Date
	r.IsToday = grid.DateKey(day) == reading.Date
}

// FromGrid copies the board. The week strip is only kept when withWeek is set.
func (r *BoardResponse) FromGrid(board grid.Board, reading grid.Reading, zone string, withWeek bool) {
	r.Date = grid.DateKey(board.Date)
	r.Mode = board.Mode.String()
	r.GridHeight = board.GridHeight
	r.TimeColumnWidth = board.TimeColumnWidth
	r.ColumnWidth = board.ColumnWidth
	r.HeaderScrollLeft = board.HeaderScrollLeft
	r.Now.FromClock(board.Now, reading, zone, board.Date)

	r.TimeLabels = make([]TimeLabelResponse, len(board.TimeLabels))
	for i, label := range board.TimeLabels {
		r.TimeLabels[i] = TimeLabelResponse{Hour: label.Hour, Label: label.Label, Top: label.Top}
	}

	r.Columns = make([]ColumnResponse, len(board.Columns))
	for i, column := range board.Columns {
		r.Columns[i].FromGrid(column)
	}

	if !withWeek {
		return
	}

	r.Week = make([]WeekDayResponse, len(board.Week))
	for i, day := range board.Week {
		r.Week[i] = WeekDayResponse{
			Date:       grid.DateKey(day.Date),
			Name:       day.Name,
			IsToday:    day.IsToday,
			IsSelected: day.IsSelected,
			IsWeekend:  day.IsWeekend,
		}
	}
}

type MenuResponse struct {
	Slot    SlotResponse `json:"slot"`
	Anchor  Point        `json:"anchor"`
	Actions []string     `json:"actions"`
}

func (r *MenuResponse) FromGrid(menu grid.Menu) {
	r.Slot.FromGrid(menu.Slot)
	r.Anchor = Point{X: menu.Anchor.X, Y: menu.Anchor.Y}

	r.Actions = make([]string, len(menu.Actions))
	for i, action := range menu.Actions {
		r.Actions[i] = string(action)
	}
}

type IntentResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Action     string `json:"action,omitempty"`
	EventID    string `json:"event_id,omitempty"`
	ResourceID string `json:"resource_id,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Published  bool   `json:"published"`
}

func (r *IntentResponse) FromModel(intent model.Intent, published bool) {
	r.ID = intent.ID
	r.Type = intent.Type
	r.Action = intent.Action
	r.EventID = intent.EventID
	r.ResourceID = intent.ResourceID
	r.Start = formatWall(intent.Start)
	r.End = formatWall(intent.End)
	r.Published = published
}

type GestureResponse struct {
	Outcome string          `json:"outcome"`
	Intent  *IntentResponse `json:"intent,omitempty"`
}

// SlotClickResponse reports what a cell click did: nothing, open the menu, or emit a slot click.
type SlotClickResponse struct {
	Handled bool            `json:"handled"`
	Menu    *MenuResponse   `json:"menu,omitempty"`
	Intent  *IntentResponse `json:"intent,omitempty"`
}

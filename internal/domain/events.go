package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged    EventType = "SelectionChanged"
	EventDragStarted         EventType = "DragStarted"
	EventDragEnded           EventType = "DragEnded"
	EventTransitionCommitted EventType = "TransitionCommitted"
	EventTransitionCancelled EventType = "TransitionCancelled"
	EventWindowRebuilt       EventType = "WindowRebuilt"
	EventPageTapped          EventType = "PageTapped"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
	EventConfigChanged       EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when the selected page changes
type SelectionChangedEvent struct {
	Previous PageID
	Current  PageID
	Index    int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// DragStartedEvent is emitted when a drag gesture begins
type DragStartedEvent struct{}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DragEndedEvent is emitted when a drag gesture is released
type DragEndedEvent struct {
	Progress float64
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// TransitionCommittedEvent is emitted when a released gesture (or an adjacent
// external selection change) advances or retreats the selected index
type TransitionCommittedEvent struct {
	Direction int // +1 advance, -1 retreat
	From      PageID
	To        PageID
}

func (e TransitionCommittedEvent) Type() EventType { return EventTransitionCommitted }

// TransitionCancelledEvent is emitted when a released gesture snaps back
// without changing the selection
type TransitionCancelledEvent struct {
	Progress float64
}

func (e TransitionCancelledEvent) Type() EventType { return EventTransitionCancelled }

// WindowRebuiltEvent is emitted when the page window is rebuilt around a
// selection
type WindowRebuiltEvent struct {
	Selection PageID
	Size      int
	Index     int
}

func (e WindowRebuiltEvent) Type() EventType { return EventWindowRebuilt }

// PageTappedEvent is emitted when the front card is tapped
type PageTappedEvent struct {
	Page PageID
}

func (e PageTappedEvent) Type() EventType { return EventPageTapped }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Pages []PageID
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	SelectedPage PageID
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

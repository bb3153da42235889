package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unibazaar/unibazaar-tui/internal/backend"
)

func waitForBackendEvent(p *backend.Persister) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-p.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.persister != nil {
		return waitForBackendEvent(m.persister)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.persister = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.ListingsLoaded {
		m.loading = false
		m.refreshGrid()
	}
	if res.SaveCompleted {
		if res.SaveErr != nil {
			m.errMsg = "couldn't write listings to disk; changes kept in memory"
		} else {
			m.errMsg = ""
			if m.verbose {
				m.setInfo("listings saved")
			}
		}
	}
}

// persistListings queues the current user listings for an async save.
func (m *Model) persistListings() {
	if m.persister == nil {
		return
	}
	m.persister.Save(m.listings.UserEntries())
}

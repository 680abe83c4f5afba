// Package ui implements the roster screen with Bubble Tea.
//
// Core pieces:
//   - AppModel: root model owning load state, selection and the modal stack
//   - ScheduleView: date-sectioned duty list with a cursor
//   - DetailModal: overlay listing the populated fields of one duty
//   - KeybindRegistry/KeyHandler: single keys plus SPC-prefixed sequences
//
// Views receive an explicit theme.Palette through NewStyles.
package ui

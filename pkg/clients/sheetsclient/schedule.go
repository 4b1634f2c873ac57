package sheetsclient

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/sheets/v4"
)

// PublishedScheduleRow represents a single trip row in the published schedule
type PublishedScheduleRow struct {
	Date        string // Format: "2006-01-02"
	Departure   string
	Return      string
	Destination string
	Requester   string
	Drivers     []string // Driver names, one per assignment
	Buses       []string // Bus plates, one per assignment
	Passengers  int
	Status      string
	Capacity    string // e.g. "44 seats" or "insufficient (22/40)"
}

// PublishedSchedule represents the complete published schedule data
type PublishedSchedule struct {
	StartDate string // Format: "2006-01-02"
	EndDate   string // Format: "2006-01-02"
	Rows      []PublishedScheduleRow
}

// PublishSchedule publishes a weekly schedule to Google Sheets
// If the tab for the date range doesn't exist it is created, otherwise
// its contents are replaced
func (c *Client) PublishSchedule(
	spreadsheetID string,
	publishedSchedule *PublishedSchedule,
) error {
	tabTitle, err := generateTabTitle(publishedSchedule.StartDate, publishedSchedule.EndDate)
	if err != nil {
		return fmt.Errorf("failed to generate tab title: %w", err)
	}

	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	var existingSheet *sheets.Sheet
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == tabTitle {
			existingSheet = sheet
			break
		}
	}

	if existingSheet == nil {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	} else {
		// Stale rows from a previous publish must not survive
		if err := c.ClearValues(spreadsheetID, fmt.Sprintf("%s!A1:ZZ", tabTitle)); err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	}

	header := []interface{}{
		"Date", "Departure", "Return", "Destination", "Requester",
		"Drivers", "Buses", "Passengers", "Capacity", "Status",
	}

	allRows := [][]interface{}{header}
	for _, row := range publishedSchedule.Rows {
		allRows = append(allRows, []interface{}{
			row.Date,
			row.Departure,
			row.Return,
			row.Destination,
			row.Requester,
			strings.Join(row.Drivers, ", "),
			strings.Join(row.Buses, ", "),
			row.Passengers,
			row.Capacity,
			row.Status,
		})
	}

	if err := c.UpdateValues(spreadsheetID, fmt.Sprintf("%s!A1", tabTitle), allRows); err != nil {
		return fmt.Errorf("failed to write data to tab: %w", err)
	}

	return nil
}

// generateTabTitle creates a tab title in the format "Mon Jun 03 2024 - Sun Jun 09 2024"
func generateTabTitle(startDate, endDate string) (string, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return "", fmt.Errorf("invalid start date: %w", err)
	}

	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return "", fmt.Errorf("invalid end date: %w", err)
	}

	return fmt.Sprintf("%s - %s",
		start.Format("Mon Jan 02 2006"),
		end.Format("Mon Jan 02 2006"),
	), nil
}

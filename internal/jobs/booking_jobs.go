package jobs

import (
	"context"
	"time"

	"itemshare-backend/internal/logger"
)

// SendUpcomingBookingReminders emails bookers whose approved bookings
// start within the next 24 hours.
func (jr *JobRunner) SendUpcomingBookingReminders() {
	jr.runWithRecovery("SendUpcomingBookingReminders", func() {
		ctx := context.Background()

		query := `
			SELECT b.booking_id, b.start_ts,
			       u.email, i.name AS item_name
			FROM bookings b
			JOIN users u ON b.booker_id = u.user_id
			JOIN items i ON b.item_id = i.item_id
			WHERE b.status = 'APPROVED'
			  AND b.start_ts > $1
			  AND b.start_ts <= $2
		`

		now := time.Now().UTC()
		rows, err := jr.db.QueryContext(ctx, query, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to query upcoming bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				bookingID int64
				start     time.Time
				email     string
				itemName  string
			)

			if err := rows.Scan(&bookingID, &start, &email, &itemName); err != nil {
				logger.Error("Failed to scan upcoming booking", "error", err)
				continue
			}

			if err := jr.services.Email.SendUpcomingBookingReminder(ctx, email, itemName, start); err != nil {
				logger.Error("Failed to send upcoming booking reminder",
					"booking_id", bookingID,
					"email", email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent upcoming booking reminder",
				"booking_id", bookingID,
				"email", email)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming bookings", "error", err)
			return
		}

		logger.Info("Upcoming booking reminders sent", "count", count)
	})
}

// SendPendingApprovalReminders emails owners about bookings that have
// been waiting on a decision for more than a day.
func (jr *JobRunner) SendPendingApprovalReminders() {
	jr.runWithRecovery("SendPendingApprovalReminders", func() {
		ctx := context.Background()

		query := `
			SELECT b.booking_id,
			       owner.email, i.name AS item_name, booker.name AS booker_name
			FROM bookings b
			JOIN items i ON b.item_id = i.item_id
			JOIN users owner ON i.owner_id = owner.user_id
			JOIN users booker ON b.booker_id = booker.user_id
			WHERE b.status = 'WAITING'
			  AND b.start_ts > $1
			  AND b.created_on < $2
		`

		now := time.Now().UTC()
		dayAgo := now.Add(-24 * time.Hour)
		rows, err := jr.db.QueryContext(ctx, query, now, dayAgo)
		if err != nil {
			logger.Error("Failed to query pending bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				bookingID  int64
				ownerEmail string
				itemName   string
				bookerName string
			)

			if err := rows.Scan(&bookingID, &ownerEmail, &itemName, &bookerName); err != nil {
				logger.Error("Failed to scan pending booking", "error", err)
				continue
			}

			if err := jr.services.Email.SendPendingApprovalReminder(ctx, ownerEmail, itemName, bookerName); err != nil {
				logger.Error("Failed to send pending approval reminder",
					"booking_id", bookingID,
					"email", ownerEmail,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent pending approval reminder",
				"booking_id", bookingID,
				"email", ownerEmail)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating pending bookings", "error", err)
			return
		}

		logger.Info("Pending approval reminders sent", "count", count)
	})
}

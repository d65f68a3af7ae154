package repository

import "meeting-scheduler/internal/pkg/pgconv"

func isNoRows(err error) bool {
	return pgconv.IsNoRows(err)
}

package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-assignment/internal/api/shared/constants"
)

// GetAssignmentChangesQueryParams holds query parameters for GET /assignments/:phone/changes
type GetAssignmentChangesQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseGetAssignmentChangesQuery parses query parameters for GET /assignments/:phone/changes
func ParseGetAssignmentChangesQuery(c *gin.Context) (*GetAssignmentChangesQueryParams, error) {
	var params GetAssignmentChangesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// Validate validates the query parameters
func (p *GetAssignmentChangesQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be between 1 and %d", constants.MAX_PAGE_SIZE)
	}
	return nil
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// CampaignLead is the predicate function for campaignlead builders.
type CampaignLead func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// EmailAccount is the predicate function for emailaccount builders.
type EmailAccount func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Reply is the predicate function for reply builders.
type Reply func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WorkflowRun is the predicate function for workflowrun builders.
type WorkflowRun func(*sql.Selector)

// WorkflowStep is the predicate function for workflowstep builders.
type WorkflowStep func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jordanlanch/leadreach/ent/campaign"
	"github.com/jordanlanch/leadreach/ent/campaignlead"
	"github.com/jordanlanch/leadreach/ent/company"
	"github.com/jordanlanch/leadreach/ent/emailaccount"
	"github.com/jordanlanch/leadreach/ent/lead"
	"github.com/jordanlanch/leadreach/ent/reply"
	"github.com/jordanlanch/leadreach/ent/schema"
	"github.com/jordanlanch/leadreach/ent/user"
	"github.com/jordanlanch/leadreach/ent/workflowrun"
	"github.com/jordanlanch/leadreach/ent/workflowstep"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[0].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = campaignDescName.Validators[0].(func(string) error)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[6].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[7].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	campaignleadFields := schema.CampaignLead{}.Fields()
	_ = campaignleadFields
	// campaignleadDescCreatedAt is the schema descriptor for created_at field.
	campaignleadDescCreatedAt := campaignleadFields[10].Descriptor()
	// campaignlead.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaignlead.DefaultCreatedAt = campaignleadDescCreatedAt.Default.(func() time.Time)
	// campaignleadDescUpdatedAt is the schema descriptor for updated_at field.
	campaignleadDescUpdatedAt := campaignleadFields[11].Descriptor()
	// campaignlead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaignlead.DefaultUpdatedAt = campaignleadDescUpdatedAt.Default.(func() time.Time)
	// campaignlead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaignlead.UpdateDefaultUpdatedAt = campaignleadDescUpdatedAt.UpdateDefault.(func() time.Time)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescDomain is the schema descriptor for domain field.
	companyDescDomain := companyFields[0].Descriptor()
	// company.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	company.DomainValidator = companyDescDomain.Validators[0].(func(string) error)
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[8].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[9].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	emailaccountFields := schema.EmailAccount{}.Fields()
	_ = emailaccountFields
	// emailaccountDescEmail is the schema descriptor for email field.
	emailaccountDescEmail := emailaccountFields[1].Descriptor()
	// emailaccount.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	emailaccount.EmailValidator = emailaccountDescEmail.Validators[0].(func(string) error)
	// emailaccountDescAccessToken is the schema descriptor for access_token field.
	emailaccountDescAccessToken := emailaccountFields[4].Descriptor()
	// emailaccount.AccessTokenValidator is a validator for the "access_token" field. It is called by the builders before save.
	emailaccount.AccessTokenValidator = emailaccountDescAccessToken.Validators[0].(func(string) error)
	// emailaccountDescRefreshToken is the schema descriptor for refresh_token field.
	emailaccountDescRefreshToken := emailaccountFields[5].Descriptor()
	// emailaccount.RefreshTokenValidator is a validator for the "refresh_token" field. It is called by the builders before save.
	emailaccount.RefreshTokenValidator = emailaccountDescRefreshToken.Validators[0].(func(string) error)
	// emailaccountDescActive is the schema descriptor for active field.
	emailaccountDescActive := emailaccountFields[7].Descriptor()
	// emailaccount.DefaultActive holds the default value on creation for the active field.
	emailaccount.DefaultActive = emailaccountDescActive.Default.(bool)
	// emailaccountDescCreatedAt is the schema descriptor for created_at field.
	emailaccountDescCreatedAt := emailaccountFields[8].Descriptor()
	// emailaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	emailaccount.DefaultCreatedAt = emailaccountDescCreatedAt.Default.(func() time.Time)
	// emailaccountDescUpdatedAt is the schema descriptor for updated_at field.
	emailaccountDescUpdatedAt := emailaccountFields[9].Descriptor()
	// emailaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	emailaccount.DefaultUpdatedAt = emailaccountDescUpdatedAt.Default.(func() time.Time)
	// emailaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	emailaccount.UpdateDefaultUpdatedAt = emailaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[1].Descriptor()
	// lead.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lead.EmailValidator = leadDescEmail.Validators[0].(func(string) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[8].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[9].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	replyFields := schema.Reply{}.Fields()
	_ = replyFields
	// replyDescThreadID is the schema descriptor for thread_id field.
	replyDescThreadID := replyFields[2].Descriptor()
	// reply.ThreadIDValidator is a validator for the "thread_id" field. It is called by the builders before save.
	reply.ThreadIDValidator = replyDescThreadID.Validators[0].(func(string) error)
	// replyDescMessageID is the schema descriptor for message_id field.
	replyDescMessageID := replyFields[3].Descriptor()
	// reply.MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	reply.MessageIDValidator = replyDescMessageID.Validators[0].(func(string) error)
	// replyDescReceivedAt is the schema descriptor for received_at field.
	replyDescReceivedAt := replyFields[6].Descriptor()
	// reply.DefaultReceivedAt holds the default value on creation for the received_at field.
	reply.DefaultReceivedAt = replyDescReceivedAt.Default.(func() time.Time)
	// replyDescCreatedAt is the schema descriptor for created_at field.
	replyDescCreatedAt := replyFields[7].Descriptor()
	// reply.DefaultCreatedAt holds the default value on creation for the created_at field.
	reply.DefaultCreatedAt = replyDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowrunFields := schema.WorkflowRun{}.Fields()
	_ = workflowrunFields
	// workflowrunDescStartedAt is the schema descriptor for started_at field.
	workflowrunDescStartedAt := workflowrunFields[4].Descriptor()
	// workflowrun.DefaultStartedAt holds the default value on creation for the started_at field.
	workflowrun.DefaultStartedAt = workflowrunDescStartedAt.Default.(func() time.Time)
	workflowstepFields := schema.WorkflowStep{}.Fields()
	_ = workflowstepFields
	// workflowstepDescName is the schema descriptor for name field.
	workflowstepDescName := workflowstepFields[1].Descriptor()
	// workflowstep.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflowstep.NameValidator = workflowstepDescName.Validators[0].(func(string) error)
	// workflowstepDescAttempts is the schema descriptor for attempts field.
	workflowstepDescAttempts := workflowstepFields[3].Descriptor()
	// workflowstep.DefaultAttempts holds the default value on creation for the attempts field.
	workflowstep.DefaultAttempts = workflowstepDescAttempts.Default.(int)
	// workflowstep.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	workflowstep.AttemptsValidator = workflowstepDescAttempts.Validators[0].(func(int) error)
	// workflowstepDescCompletedAt is the schema descriptor for completed_at field.
	workflowstepDescCompletedAt := workflowstepFields[5].Descriptor()
	// workflowstep.DefaultCompletedAt holds the default value on creation for the completed_at field.
	workflowstep.DefaultCompletedAt = workflowstepDescCompletedAt.Default.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "scheduled", "running", "completed", "cancelled", "error"}, Default: "draft"},
		{Name: "scheduled_at", Type: field.TypeTime, Nullable: true},
		{Name: "attachment_keys", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaigns_users_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_user_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[8]},
			},
			{
				Name:    "campaign_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[2]},
			},
			{
				Name:    "campaign_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[3]},
			},
			{
				Name:    "campaign_created_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[6]},
			},
		},
	}
	// CampaignLeadsColumns holds the columns for the "campaign_leads" table.
	CampaignLeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed", "replied", "opened", "cancelled"}, Default: "pending"},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "opened_at", Type: field.TypeTime, Nullable: true},
		{Name: "replied_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeInt},
		{Name: "account_id", Type: field.TypeInt},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// CampaignLeadsTable holds the schema information for the "campaign_leads" table.
	CampaignLeadsTable = &schema.Table{
		Name:       "campaign_leads",
		Columns:    CampaignLeadsColumns,
		PrimaryKey: []*schema.Column{CampaignLeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaign_leads_campaigns_campaign_leads",
				Columns:    []*schema.Column{CampaignLeadsColumns[10]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "campaign_leads_email_accounts_campaign_leads",
				Columns:    []*schema.Column{CampaignLeadsColumns[11]},
				RefColumns: []*schema.Column{EmailAccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "campaign_leads_leads_campaign_leads",
				Columns:    []*schema.Column{CampaignLeadsColumns[12]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_campaign_lead_unique",
				Unique:  true,
				Columns: []*schema.Column{CampaignLeadsColumns[10], CampaignLeadsColumns[12]},
			},
			{
				Name:    "idx_campaign_lead_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignLeadsColumns[10], CampaignLeadsColumns[1]},
			},
			{
				Name:    "idx_campaign_lead_thread",
				Unique:  false,
				Columns: []*schema.Column{CampaignLeadsColumns[2]},
			},
			{
				Name:    "campaignlead_sent_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignLeadsColumns[4]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "domain", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "logo_url", Type: field.TypeString, Nullable: true},
		{Name: "enrichment_status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "enrichment_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "enrichment_error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "email_subject", Type: field.TypeString, Nullable: true},
		{Name: "email_template", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_enrichment_status",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[4]},
			},
			{
				Name:    "company_created_at",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[9]},
			},
		},
	}
	// EmailAccountsColumns holds the columns for the "email_accounts" table.
	EmailAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"gmail", "outlook"}},
		{Name: "access_token", Type: field.TypeString},
		{Name: "refresh_token", Type: field.TypeString},
		{Name: "token_expires_at", Type: field.TypeTime},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// EmailAccountsTable holds the schema information for the "email_accounts" table.
	EmailAccountsTable = &schema.Table{
		Name:       "email_accounts",
		Columns:    EmailAccountsColumns,
		PrimaryKey: []*schema.Column{EmailAccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "email_accounts_users_email_accounts",
				Columns:    []*schema.Column{EmailAccountsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "emailaccount_user_id_email",
				Unique:  true,
				Columns: []*schema.Column{EmailAccountsColumns[10], EmailAccountsColumns[1]},
			},
			{
				Name:    "emailaccount_email",
				Unique:  false,
				Columns: []*schema.Column{EmailAccountsColumns[1]},
			},
			{
				Name:    "emailaccount_active",
				Unique:  false,
				Columns: []*schema.Column{EmailAccountsColumns[7]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "linkedin_url", Type: field.TypeString, Nullable: true},
		{Name: "custom_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "tag", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeInt, Nullable: true},
		{Name: "user_id", Type: field.TypeInt},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_companies_leads",
				Columns:    []*schema.Column{LeadsColumns[9]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "leads_users_leads",
				Columns:    []*schema.Column{LeadsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_lead_user_email",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[10], LeadsColumns[1]},
			},
			{
				Name:    "lead_company_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[9]},
			},
			{
				Name:    "lead_tag",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[6]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[7]},
			},
		},
	}
	// RepliesColumns holds the columns for the "replies" table.
	RepliesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "snippet", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "campaign_lead_id", Type: field.TypeInt},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// RepliesTable holds the schema information for the "replies" table.
	RepliesTable = &schema.Table{
		Name:       "replies",
		Columns:    RepliesColumns,
		PrimaryKey: []*schema.Column{RepliesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "replies_campaign_leads_replies",
				Columns:    []*schema.Column{RepliesColumns[7]},
				RefColumns: []*schema.Column{CampaignLeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "replies_leads_replies",
				Columns:    []*schema.Column{RepliesColumns[8]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reply_thread_id",
				Unique:  false,
				Columns: []*schema.Column{RepliesColumns[1]},
			},
			{
				Name:    "reply_lead_id",
				Unique:  false,
				Columns: []*schema.Column{RepliesColumns[8]},
			},
			{
				Name:    "reply_received_at",
				Unique:  false,
				Columns: []*schema.Column{RepliesColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "default_email_subject", Type: field.TypeString, Nullable: true},
		{Name: "default_email_template", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WorkflowRunsColumns holds the columns for the "workflow_runs" table.
	WorkflowRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"campaign_send", "company_enrichment"}},
		{Name: "entity_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "cancelled"}, Default: "running"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// WorkflowRunsTable holds the schema information for the "workflow_runs" table.
	WorkflowRunsTable = &schema.Table{
		Name:       "workflow_runs",
		Columns:    WorkflowRunsColumns,
		PrimaryKey: []*schema.Column{WorkflowRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowrun_kind_entity_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[1], WorkflowRunsColumns[2]},
			},
			{
				Name:    "workflowrun_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[3]},
			},
			{
				Name:    "workflowrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[5]},
			},
		},
	}
	// WorkflowStepsColumns holds the columns for the "workflow_steps" table.
	WorkflowStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed"}},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "result", Type: field.TypeBytes, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeInt},
	}
	// WorkflowStepsTable holds the schema information for the "workflow_steps" table.
	WorkflowStepsTable = &schema.Table{
		Name:       "workflow_steps",
		Columns:    WorkflowStepsColumns,
		PrimaryKey: []*schema.Column{WorkflowStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_steps_workflow_runs_steps",
				Columns:    []*schema.Column{WorkflowStepsColumns[6]},
				RefColumns: []*schema.Column{WorkflowRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_workflow_step_run_name",
				Unique:  true,
				Columns: []*schema.Column{WorkflowStepsColumns[6], WorkflowStepsColumns[1]},
			},
		},
	}
	// CampaignAccountsColumns holds the columns for the "campaign_accounts" table.
	CampaignAccountsColumns = []*schema.Column{
		{Name: "campaign_id", Type: field.TypeInt},
		{Name: "email_account_id", Type: field.TypeInt},
	}
	// CampaignAccountsTable holds the schema information for the "campaign_accounts" table.
	CampaignAccountsTable = &schema.Table{
		Name:       "campaign_accounts",
		Columns:    CampaignAccountsColumns,
		PrimaryKey: []*schema.Column{CampaignAccountsColumns[0], CampaignAccountsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaign_accounts_campaign_id",
				Columns:    []*schema.Column{CampaignAccountsColumns[0]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "campaign_accounts_email_account_id",
				Columns:    []*schema.Column{CampaignAccountsColumns[1]},
				RefColumns: []*schema.Column{EmailAccountsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CampaignsTable,
		CampaignLeadsTable,
		CompaniesTable,
		EmailAccountsTable,
		LeadsTable,
		RepliesTable,
		UsersTable,
		WorkflowRunsTable,
		WorkflowStepsTable,
		CampaignAccountsTable,
	}
)

func init() {
	CampaignsTable.ForeignKeys[0].RefTable = UsersTable
	CampaignLeadsTable.ForeignKeys[0].RefTable = CampaignsTable
	CampaignLeadsTable.ForeignKeys[1].RefTable = EmailAccountsTable
	CampaignLeadsTable.ForeignKeys[2].RefTable = LeadsTable
	EmailAccountsTable.ForeignKeys[0].RefTable = UsersTable
	LeadsTable.ForeignKeys[0].RefTable = CompaniesTable
	LeadsTable.ForeignKeys[1].RefTable = UsersTable
	RepliesTable.ForeignKeys[0].RefTable = CampaignLeadsTable
	RepliesTable.ForeignKeys[1].RefTable = LeadsTable
	WorkflowStepsTable.ForeignKeys[0].RefTable = WorkflowRunsTable
	CampaignAccountsTable.ForeignKeys[0].RefTable = CampaignsTable
	CampaignAccountsTable.ForeignKeys[1].RefTable = EmailAccountsTable
}

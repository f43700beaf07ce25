package schema

// Entities is the built-in knowledge base covering the core CRM entities.
// The data is modeled after a standard Creatio installation. Order matters
// only for presentation; lookups go through Lookup.
var Entities = []Entity{
	{
		Name:        "Contact",
		Description: "Core entity storing person/individual information",
		TableName:   "Contact",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "Name", Type: "nvarchar(250)", Description: "Full name of the contact"},
			{Name: "AccountId", Type: "uniqueidentifier", Description: "FK to Account - associated company"},
			{Name: "Email", Type: "nvarchar(250)", Description: "Primary email address"},
			{Name: "Phone", Type: "nvarchar(250)", Description: "Primary phone number"},
			{Name: "MobilePhone", Type: "nvarchar(250)", Description: "Mobile phone number"},
			{Name: "JobTitle", Type: "nvarchar(250)", Description: "Contact's job title"},
			{Name: "DepartmentId", Type: "uniqueidentifier", Description: "FK to Department lookup"},
			{Name: "OwnerId", Type: "uniqueidentifier", Description: "FK to Contact - record owner"},
			{Name: "TypeId", Type: "uniqueidentifier", Description: "FK to ContactType lookup"},
			{Name: "CreatedOn", Type: "datetime", Description: "Record creation timestamp"},
			{Name: "ModifiedOn", Type: "datetime", Description: "Last modification timestamp"},
		},
		Relationships: []Relationship{
			{Entity: "Account", Type: "many-to-one", Column: "AccountId"},
			{Entity: "Activity", Type: "one-to-many", Detail: true},
			{Entity: "Opportunity", Type: "one-to-many", Via: "OpportunityContact"},
			{Entity: "Lead", Type: "one-to-one", Column: "QualifiedContactId"},
		},
	},
	{
		Name:        "Account",
		Description: "Core entity storing company/organization information",
		TableName:   "Account",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "Name", Type: "nvarchar(250)", Description: "Company name"},
			{Name: "TypeId", Type: "uniqueidentifier", Description: "FK to AccountType lookup"},
			{Name: "IndustryId", Type: "uniqueidentifier", Description: "FK to AccountIndustry lookup"},
			{Name: "OwnerId", Type: "uniqueidentifier", Description: "FK to Contact - account owner"},
			{Name: "PrimaryContactId", Type: "uniqueidentifier", Description: "FK to Contact - primary contact"},
			{Name: "Phone", Type: "nvarchar(250)", Description: "Main phone number"},
			{Name: "Web", Type: "nvarchar(250)", Description: "Website URL"},
			{Name: "AnnualRevenue", Type: "decimal", Description: "Annual revenue amount"},
			{Name: "EmployeesNumber", Type: "int", Description: "Number of employees"},
			{Name: "CreatedOn", Type: "datetime", Description: "Record creation timestamp"},
			{Name: "ModifiedOn", Type: "datetime", Description: "Last modification timestamp"},
		},
		Relationships: []Relationship{
			{Entity: "Contact", Type: "one-to-many", Column: "AccountId"},
			{Entity: "Opportunity", Type: "one-to-many", Column: "AccountId"},
			{Entity: "Activity", Type: "one-to-many", Detail: true},
			{Entity: "Case", Type: "one-to-many", Column: "AccountId"},
		},
	},
	{
		Name:        "Opportunity",
		Description: "Sales opportunity/deal tracking entity",
		TableName:   "Opportunity",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "Title", Type: "nvarchar(250)", Description: "Opportunity name/title"},
			{Name: "AccountId", Type: "uniqueidentifier", Description: "FK to Account"},
			{Name: "StageId", Type: "uniqueidentifier", Description: "FK to OpportunityStage lookup"},
			{Name: "Amount", Type: "decimal", Description: "Deal value/amount"},
			{Name: "Probability", Type: "int", Description: "Win probability percentage"},
			{Name: "OwnerId", Type: "uniqueidentifier", Description: "FK to Contact - opportunity owner"},
			{Name: "CloseDate", Type: "datetime", Description: "Expected close date"},
			{Name: "DueDate", Type: "datetime", Description: "Due date"},
			{Name: "LeadTypeId", Type: "uniqueidentifier", Description: "FK to LeadType - source type"},
			{Name: "IsPrimary", Type: "bit", Description: "Primary opportunity flag"},
			{Name: "CreatedOn", Type: "datetime", Description: "Record creation timestamp"},
			{Name: "ModifiedOn", Type: "datetime", Description: "Last modification timestamp"},
		},
		Relationships: []Relationship{
			{Entity: "Account", Type: "many-to-one", Column: "AccountId"},
			{Entity: "Contact", Type: "many-to-many", Via: "OpportunityContact"},
			{Entity: "OpportunityStage", Type: "many-to-one", Column: "StageId"},
			{Entity: "Product", Type: "many-to-many", Via: "OpportunityProductInterest"},
			{Entity: "Activity", Type: "one-to-many", Detail: true},
		},
	},
	{
		Name:        "Lead",
		Description: "Sales lead entity - potential customers before qualification",
		TableName:   "Lead",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "LeadName", Type: "nvarchar(250)", Description: "Lead name/title"},
			{Name: "Contact", Type: "nvarchar(250)", Description: "Contact person name"},
			{Name: "Account", Type: "nvarchar(250)", Description: "Company name (text)"},
			{Name: "Email", Type: "nvarchar(250)", Description: "Email address"},
			{Name: "MobilePhone", Type: "nvarchar(250)", Description: "Mobile phone"},
			{Name: "QualifyStatusId", Type: "uniqueidentifier", Description: "FK to QualifyStatus lookup"},
			{Name: "LeadSourceId", Type: "uniqueidentifier", Description: "FK to LeadSource lookup"},
			{Name: "LeadTypeId", Type: "uniqueidentifier", Description: "FK to LeadType lookup"},
			{Name: "OwnerId", Type: "uniqueidentifier", Description: "FK to Contact - lead owner"},
			{Name: "QualifiedContactId", Type: "uniqueidentifier", Description: "FK to Contact - converted contact"},
			{Name: "QualifiedAccountId", Type: "uniqueidentifier", Description: "FK to Account - converted account"},
			{Name: "Budget", Type: "decimal", Description: "Estimated budget"},
			{Name: "CreatedOn", Type: "datetime", Description: "Record creation timestamp"},
		},
		Relationships: []Relationship{
			{Entity: "Contact", Type: "one-to-one", Column: "QualifiedContactId"},
			{Entity: "Account", Type: "one-to-one", Column: "QualifiedAccountId"},
			{Entity: "Activity", Type: "one-to-many", Detail: true},
		},
	},
	{
		Name:        "Activity",
		Description: "Activities including calls, emails, tasks, meetings",
		TableName:   "Activity",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "Title", Type: "nvarchar(500)", Description: "Activity subject/title"},
			{Name: "TypeId", Type: "uniqueidentifier", Description: "FK to ActivityType lookup"},
			{Name: "StatusId", Type: "uniqueidentifier", Description: "FK to ActivityStatus lookup"},
			{Name: "PriorityId", Type: "uniqueidentifier", Description: "FK to ActivityPriority lookup"},
			{Name: "OwnerId", Type: "uniqueidentifier", Description: "FK to Contact - activity owner"},
			{Name: "ContactId", Type: "uniqueidentifier", Description: "FK to Contact - related contact"},
			{Name: "AccountId", Type: "uniqueidentifier", Description: "FK to Account - related account"},
			{Name: "OpportunityId", Type: "uniqueidentifier", Description: "FK to Opportunity"},
			{Name: "StartDate", Type: "datetime", Description: "Activity start date/time"},
			{Name: "DueDate", Type: "datetime", Description: "Activity due date/time"},
			{Name: "ResultId", Type: "uniqueidentifier", Description: "FK to ActivityResult lookup"},
			{Name: "CreatedOn", Type: "datetime", Description: "Record creation timestamp"},
		},
		Relationships: []Relationship{
			{Entity: "Contact", Type: "many-to-one", Column: "ContactId"},
			{Entity: "Account", Type: "many-to-one", Column: "AccountId"},
			{Entity: "Opportunity", Type: "many-to-one", Column: "OpportunityId"},
			{Entity: "ActivityParticipant", Type: "one-to-many", Detail: true},
		},
	},
	{
		Name:        "Case",
		Description: "Customer service case/ticket entity",
		TableName:   "Case",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "Number", Type: "nvarchar(250)", Description: "Case number"},
			{Name: "Subject", Type: "nvarchar(500)", Description: "Case subject"},
			{Name: "StatusId", Type: "uniqueidentifier", Description: "FK to CaseStatus lookup"},
			{Name: "PriorityId", Type: "uniqueidentifier", Description: "FK to CasePriority lookup"},
			{Name: "CategoryId", Type: "uniqueidentifier", Description: "FK to CaseCategory lookup"},
			{Name: "ContactId", Type: "uniqueidentifier", Description: "FK to Contact - reporting contact"},
			{Name: "AccountId", Type: "uniqueidentifier", Description: "FK to Account - associated account"},
			{Name: "OwnerId", Type: "uniqueidentifier", Description: "FK to Contact - case owner"},
			{Name: "GroupId", Type: "uniqueidentifier", Description: "FK to SysAdminUnit - assigned group"},
			{Name: "RegisteredOn", Type: "datetime", Description: "Registration timestamp"},
			{Name: "SolutionDate", Type: "datetime", Description: "Solution/resolution date"},
			{Name: "SatisfactionLevelId", Type: "uniqueidentifier", Description: "FK to SatisfactionLevel lookup"},
			{Name: "CreatedOn", Type: "datetime", Description: "Record creation timestamp"},
		},
		Relationships: []Relationship{
			{Entity: "Contact", Type: "many-to-one", Column: "ContactId"},
			{Entity: "Account", Type: "many-to-one", Column: "AccountId"},
			{Entity: "Activity", Type: "one-to-many", Detail: true},
		},
	},
	{
		Name:        "Product",
		Description: "Product catalog entity",
		TableName:   "Product",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "Name", Type: "nvarchar(250)", Description: "Product name"},
			{Name: "Code", Type: "nvarchar(50)", Description: "Product code/SKU"},
			{Name: "TypeId", Type: "uniqueidentifier", Description: "FK to ProductType lookup"},
			{Name: "CategoryId", Type: "uniqueidentifier", Description: "FK to ProductCategory lookup"},
			{Name: "Price", Type: "decimal", Description: "Unit price"},
			{Name: "IsActive", Type: "bit", Description: "Active flag"},
			{Name: "Description", Type: "nvarchar(max)", Description: "Product description"},
			{Name: "CreatedOn", Type: "datetime", Description: "Record creation timestamp"},
		},
		Relationships: []Relationship{
			{Entity: "Opportunity", Type: "many-to-many", Via: "OpportunityProductInterest"},
			{Entity: "Order", Type: "one-to-many", Via: "OrderProduct"},
		},
	},
	{
		Name:        "Order",
		Description: "Sales order entity",
		TableName:   "Order",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "Number", Type: "nvarchar(250)", Description: "Order number"},
			{Name: "AccountId", Type: "uniqueidentifier", Description: "FK to Account - customer"},
			{Name: "ContactId", Type: "uniqueidentifier", Description: "FK to Contact - order contact"},
			{Name: "OpportunityId", Type: "uniqueidentifier", Description: "FK to Opportunity - source opportunity"},
			{Name: "StatusId", Type: "uniqueidentifier", Description: "FK to OrderStatus lookup"},
			{Name: "Amount", Type: "decimal", Description: "Order total amount"},
			{Name: "OwnerId", Type: "uniqueidentifier", Description: "FK to Contact - order owner"},
			{Name: "Date", Type: "datetime", Description: "Order date"},
			{Name: "CreatedOn", Type: "datetime", Description: "Record creation timestamp"},
		},
		Relationships: []Relationship{
			{Entity: "Account", Type: "many-to-one", Column: "AccountId"},
			{Entity: "Contact", Type: "many-to-one", Column: "ContactId"},
			{Entity: "Opportunity", Type: "many-to-one", Column: "OpportunityId"},
			{Entity: "OrderProduct", Type: "one-to-many", Detail: true},
		},
	},
	{
		Name:        "SysAdminUnit",
		Description: "System users and groups (security model)",
		TableName:   "SysAdminUnit",
		Columns: []Column{
			{Name: "Id", Type: "uniqueidentifier", Description: "Primary key"},
			{Name: "Name", Type: "nvarchar(250)", Description: "User/group name"},
			{Name: "ContactId", Type: "uniqueidentifier", Description: "FK to Contact - linked contact"},
			{Name: "SysAdminUnitTypeId", Type: "uniqueidentifier", Description: "FK - user type (user, role, org)"},
			{Name: "ParentRoleId", Type: "uniqueidentifier", Description: "FK to parent role/group"},
			{Name: "Active", Type: "bit", Description: "Active flag"},
			{Name: "LoggedIn", Type: "bit", Description: "Currently logged in flag"},
		},
		Relationships: []Relationship{
			{Entity: "Contact", Type: "one-to-one", Column: "ContactId"},
			{Entity: "SysAdminUnit", Type: "self-referencing", Column: "ParentRoleId"},
		},
	},
}

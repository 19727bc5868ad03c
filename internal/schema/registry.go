package schema

// Entities lists every Synthea entity in load order: independent entities
// first, then Encounter, then the encounter-scoped clinical entities, then
// insurance and claims. The pipeline iterates this slice directly.
var Entities = []EntitySpec{
	{
		Label:      "Patient",
		File:       "patients.csv",
		IDProperty: "id",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "BIRTHDATE", Property: "birthDate", Kind: KindString},
			{Column: "DEATHDATE", Property: "deathDate", Kind: KindString},
			{Column: "SSN", Property: "ssn", Kind: KindString},
			{Column: "DRIVERS", Property: "drivers", Kind: KindString},
			{Column: "PASSPORT", Property: "passport", Kind: KindString},
			{Column: "PREFIX", Property: "prefix", Kind: KindString},
			{Column: "FIRST", Property: "firstName", Kind: KindString},
			{Column: "MIDDLE", Property: "middleName", Kind: KindString},
			{Column: "LAST", Property: "lastName", Kind: KindString},
			{Column: "SUFFIX", Property: "suffix", Kind: KindString},
			{Column: "MAIDEN", Property: "maiden", Kind: KindString},
			{Column: "MARITAL", Property: "marital", Kind: KindString},
			{Column: "RACE", Property: "race", Kind: KindString},
			{Column: "ETHNICITY", Property: "ethnicity", Kind: KindString},
			{Column: "GENDER", Property: "gender", Kind: KindString},
			{Column: "BIRTHPLACE", Property: "birthPlace", Kind: KindString},
			{Column: "ADDRESS", Property: "address", Kind: KindString},
			{Column: "CITY", Property: "city", Kind: KindString},
			{Column: "STATE", Property: "state", Kind: KindString},
			{Column: "COUNTY", Property: "county", Kind: KindString},
			{Column: "FIPS", Property: "fips", Kind: KindString},
			{Column: "ZIP", Property: "zip", Kind: KindString},
			{Column: "LAT", Property: "lat", Kind: KindFloat},
			{Column: "LON", Property: "lon", Kind: KindFloat},
			{Column: "HEALTHCARE_EXPENSES", Property: "healthcareExpenses", Kind: KindFloat},
			{Column: "HEALTHCARE_COVERAGE", Property: "healthcareCoverage", Kind: KindFloat},
			{Column: "INCOME", Property: "income", Kind: KindFloat},
		},
	},
	{
		Label:      "Organization",
		File:       "organizations.csv",
		IDProperty: "id",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "NAME", Property: "name", Kind: KindString},
			{Column: "ADDRESS", Property: "address", Kind: KindString},
			{Column: "CITY", Property: "city", Kind: KindString},
			{Column: "STATE", Property: "state", Kind: KindString},
			{Column: "ZIP", Property: "zip", Kind: KindString},
			{Column: "LAT", Property: "lat", Kind: KindFloat},
			{Column: "LON", Property: "lon", Kind: KindFloat},
			{Column: "PHONE", Property: "phone", Kind: KindString},
			{Column: "REVENUE", Property: "revenue", Kind: KindFloat},
			{Column: "UTILIZATION", Property: "utilization", Kind: KindInt},
		},
	},
	{
		Label:      "Provider",
		File:       "providers.csv",
		IDProperty: "id",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "ORGANIZATION", Property: "organizationId", Kind: KindString},
			{Column: "NAME", Property: "name", Kind: KindString},
			{Column: "GENDER", Property: "gender", Kind: KindString},
			{Column: "SPECIALITY", Property: "speciality", Kind: KindString},
			{Column: "ADDRESS", Property: "address", Kind: KindString},
			{Column: "CITY", Property: "city", Kind: KindString},
			{Column: "STATE", Property: "state", Kind: KindString},
			{Column: "ZIP", Property: "zip", Kind: KindString},
			{Column: "LAT", Property: "lat", Kind: KindFloat},
			{Column: "LON", Property: "lon", Kind: KindFloat},
			{Column: "ENCOUNTERS", Property: "encounters", Kind: KindInt},
			{Column: "PROCEDURES", Property: "procedures", Kind: KindInt},
		},
	},
	{
		Label:      "Payer",
		File:       "payers.csv",
		IDProperty: "id",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "NAME", Property: "name", Kind: KindString},
			{Column: "OWNERSHIP", Property: "ownership", Kind: KindString},
			{Column: "ADDRESS", Property: "address", Kind: KindString},
			{Column: "CITY", Property: "city", Kind: KindString},
			{Column: "STATE_HEADQUARTERED", Property: "stateHeadquartered", Kind: KindString},
			{Column: "ZIP", Property: "zip", Kind: KindString},
			{Column: "PHONE", Property: "phone", Kind: KindString},
			{Column: "AMOUNT_COVERED", Property: "amountCovered", Kind: KindFloat},
			{Column: "AMOUNT_UNCOVERED", Property: "amountUncovered", Kind: KindFloat},
			{Column: "REVENUE", Property: "revenue", Kind: KindFloat},
			{Column: "COVERED_ENCOUNTERS", Property: "coveredEncounters", Kind: KindInt},
			{Column: "UNCOVERED_ENCOUNTERS", Property: "uncoveredEncounters", Kind: KindInt},
			{Column: "COVERED_MEDICATIONS", Property: "coveredMedications", Kind: KindInt},
			{Column: "UNCOVERED_MEDICATIONS", Property: "uncoveredMedications", Kind: KindInt},
			{Column: "COVERED_PROCEDURES", Property: "coveredProcedures", Kind: KindInt},
			{Column: "UNCOVERED_PROCEDURES", Property: "uncoveredProcedures", Kind: KindInt},
			{Column: "COVERED_IMMUNIZATIONS", Property: "coveredImmunizations", Kind: KindInt},
			{Column: "UNCOVERED_IMMUNIZATIONS", Property: "uncoveredImmunizations", Kind: KindInt},
			{Column: "UNIQUE_CUSTOMERS", Property: "uniqueCustomers", Kind: KindInt},
			{Column: "QOLS_AVG", Property: "qolsAvg", Kind: KindFloat},
			{Column: "MEMBER_MONTHS", Property: "memberMonths", Kind: KindInt},
		},
	},
	{
		Label:      "Encounter",
		File:       "encounters.csv",
		IDProperty: "id",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "START", Property: "start", Kind: KindString},
			{Column: "STOP", Property: "stop", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ORGANIZATION", Property: "organizationId", Kind: KindString},
			{Column: "PROVIDER", Property: "providerId", Kind: KindString},
			{Column: "PAYER", Property: "payerId", Kind: KindString},
			{Column: "ENCOUNTERCLASS", Property: "encounterClass", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "BASE_ENCOUNTER_COST", Property: "baseCost", Kind: KindFloat},
			{Column: "TOTAL_CLAIM_COST", Property: "totalClaimCost", Kind: KindFloat},
			{Column: "PAYER_COVERAGE", Property: "payerCoverage", Kind: KindFloat},
			{Column: "REASONCODE", Property: "reasonCode", Kind: KindString},
			{Column: "REASONDESCRIPTION", Property: "reasonDescription", Kind: KindString},
		},
	},
	{
		Label: "Condition",
		File:  "conditions.csv",
		Fields: []Field{
			{Column: "START", Property: "start", Kind: KindString},
			{Column: "STOP", Property: "stop", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "SYSTEM", Property: "system", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
		},
	},
	{
		Label: "Medication",
		File:  "medications.csv",
		Fields: []Field{
			{Column: "START", Property: "start", Kind: KindString},
			{Column: "STOP", Property: "stop", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "PAYER", Property: "payerId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "BASE_COST", Property: "baseCost", Kind: KindFloat},
			{Column: "PAYER_COVERAGE", Property: "payerCoverage", Kind: KindFloat},
			{Column: "DISPENSES", Property: "dispenses", Kind: KindInt},
			{Column: "TOTALCOST", Property: "totalCost", Kind: KindFloat},
			{Column: "REASONCODE", Property: "reasonCode", Kind: KindString},
			{Column: "REASONDESCRIPTION", Property: "reasonDescription", Kind: KindString},
		},
	},
	{
		Label: "Procedure",
		File:  "procedures.csv",
		Fields: []Field{
			{Column: "START", Property: "start", Kind: KindString},
			{Column: "STOP", Property: "stop", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "SYSTEM", Property: "system", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "BASE_COST", Property: "baseCost", Kind: KindFloat},
			{Column: "REASONCODE", Property: "reasonCode", Kind: KindString},
			{Column: "REASONDESCRIPTION", Property: "reasonDescription", Kind: KindString},
		},
	},
	{
		Label: "Immunization",
		File:  "immunizations.csv",
		Fields: []Field{
			{Column: "DATE", Property: "date", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "COST", Property: "cost", Kind: KindFloat},
		},
	},
	{
		Label: "Observation",
		File:  "observations.csv",
		Fields: []Field{
			{Column: "DATE", Property: "date", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "CATEGORY", Property: "category", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "VALUE", Property: "value", Kind: KindString},
			{Column: "UNITS", Property: "units", Kind: KindString},
			{Column: "TYPE", Property: "type", Kind: KindString},
		},
	},
	{
		Label: "Allergy",
		File:  "allergies.csv",
		Fields: []Field{
			{Column: "START", Property: "start", Kind: KindString},
			{Column: "STOP", Property: "stop", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "SYSTEM", Property: "system", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "TYPE", Property: "type", Kind: KindString},
			{Column: "CATEGORY", Property: "category", Kind: KindString},
			{Column: "REACTION1", Property: "reaction1", Kind: KindString},
			{Column: "DESCRIPTION1", Property: "description1", Kind: KindString},
			{Column: "SEVERITY1", Property: "severity1", Kind: KindString},
			{Column: "REACTION2", Property: "reaction2", Kind: KindString},
			{Column: "DESCRIPTION2", Property: "description2", Kind: KindString},
			{Column: "SEVERITY2", Property: "severity2", Kind: KindString},
		},
	},
	{
		Label:      "CarePlan",
		File:       "careplans.csv",
		IDProperty: "id",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "START", Property: "start", Kind: KindString},
			{Column: "STOP", Property: "stop", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "REASONCODE", Property: "reasonCode", Kind: KindString},
			{Column: "REASONDESCRIPTION", Property: "reasonDescription", Kind: KindString},
		},
	},
	{
		Label: "Device",
		File:  "devices.csv",
		Fields: []Field{
			{Column: "START", Property: "start", Kind: KindString},
			{Column: "STOP", Property: "stop", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "UDI", Property: "udi", Kind: KindString},
		},
	},
	{
		Label: "ImagingStudy",
		File:  "imaging_studies.csv",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "DATE", Property: "date", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "SERIES_UID", Property: "seriesUid", Kind: KindString},
			{Column: "BODYSITE_CODE", Property: "bodySiteCode", Kind: KindString},
			{Column: "BODYSITE_DESCRIPTION", Property: "bodySiteDescription", Kind: KindString},
			{Column: "MODALITY_CODE", Property: "modalityCode", Kind: KindString},
			{Column: "MODALITY_DESCRIPTION", Property: "modalityDescription", Kind: KindString},
			{Column: "INSTANCE_UID", Property: "instanceUid", Kind: KindString},
			{Column: "SOP_CODE", Property: "sopCode", Kind: KindString},
			{Column: "SOP_DESCRIPTION", Property: "sopDescription", Kind: KindString},
			{Column: "PROCEDURE_CODE", Property: "procedureCode", Kind: KindString},
		},
	},
	{
		Label: "Supply",
		File:  "supplies.csv",
		Fields: []Field{
			{Column: "DATE", Property: "date", Kind: KindString},
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "ENCOUNTER", Property: "encounterId", Kind: KindString},
			{Column: "CODE", Property: "code", Kind: KindString},
			{Column: "DESCRIPTION", Property: "description", Kind: KindString},
			{Column: "QUANTITY", Property: "quantity", Kind: KindInt},
		},
	},
	{
		Label: "PayerTransition",
		File:  "payer_transitions.csv",
		Fields: []Field{
			{Column: "PATIENT", Property: "patientId", Kind: KindString},
			{Column: "MEMBERID", Property: "memberId", Kind: KindString},
			{Column: "START_YEAR", Property: "startYear", Kind: KindString},
			{Column: "END_YEAR", Property: "endYear", Kind: KindString},
			{Column: "PAYER", Property: "payerId", Kind: KindString},
			{Column: "SECONDARY_PAYER", Property: "secondaryPayerId", Kind: KindString},
			{Column: "OWNERSHIP", Property: "ownership", Kind: KindString},
			{Column: "OWNERNAME", Property: "ownerName", Kind: KindString},
		},
	},
	{
		Label:      "Claim",
		File:       "claims.csv",
		IDProperty: "id",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "PATIENTID", Property: "patientId", Kind: KindString},
			{Column: "PROVIDERID", Property: "providerId", Kind: KindString},
			{Column: "PRIMARYPATIENTINSURANCEID", Property: "primaryInsuranceId", Kind: KindString},
			{Column: "SECONDARYPATIENTINSURANCEID", Property: "secondaryInsuranceId", Kind: KindString},
			{Column: "DEPARTMENTID", Property: "departmentId", Kind: KindInt},
			{Column: "PATIENTDEPARTMENTID", Property: "patientDepartmentId", Kind: KindInt},
			{Column: "DIAGNOSIS1", Property: "diagnosis1", Kind: KindString},
			{Column: "DIAGNOSIS2", Property: "diagnosis2", Kind: KindString},
			{Column: "DIAGNOSIS3", Property: "diagnosis3", Kind: KindString},
			{Column: "DIAGNOSIS4", Property: "diagnosis4", Kind: KindString},
			{Column: "DIAGNOSIS5", Property: "diagnosis5", Kind: KindString},
			{Column: "DIAGNOSIS6", Property: "diagnosis6", Kind: KindString},
			{Column: "DIAGNOSIS7", Property: "diagnosis7", Kind: KindString},
			{Column: "DIAGNOSIS8", Property: "diagnosis8", Kind: KindString},
			{Column: "REFERRINGPROVIDERID", Property: "referringProviderId", Kind: KindString},
			{Column: "APPOINTMENTID", Property: "appointmentId", Kind: KindString},
			{Column: "CURRENTILLNESSDATE", Property: "currentIllnessDate", Kind: KindString},
			{Column: "SERVICEDATE", Property: "serviceDate", Kind: KindString},
			{Column: "SUPERVISINGPROVIDERID", Property: "supervisingProviderId", Kind: KindString},
			{Column: "STATUS1", Property: "status1", Kind: KindString},
			{Column: "STATUS2", Property: "status2", Kind: KindString},
			{Column: "STATUSP", Property: "statusP", Kind: KindString},
			{Column: "OUTSTANDING1", Property: "outstanding1", Kind: KindFloat},
			{Column: "OUTSTANDING2", Property: "outstanding2", Kind: KindFloat},
			{Column: "OUTSTANDINGP", Property: "outstandingP", Kind: KindFloat},
			{Column: "LASTBILLEDDATE1", Property: "lastBilledDate1", Kind: KindString},
			{Column: "LASTBILLEDDATE2", Property: "lastBilledDate2", Kind: KindString},
			{Column: "LASTBILLEDDATEP", Property: "lastBilledDateP", Kind: KindString},
			{Column: "HEALTHCARECLAIMTYPEID1", Property: "healthcareClaimTypeId1", Kind: KindInt},
			{Column: "HEALTHCARECLAIMTYPEID2", Property: "healthcareClaimTypeId2", Kind: KindInt},
		},
	},
	{
		Label:      "ClaimTransaction",
		File:       "claims_transactions.csv",
		IDProperty: "id",
		Fields: []Field{
			{Column: "Id", Property: "id", Kind: KindString},
			{Column: "CLAIMID", Property: "claimId", Kind: KindString},
			{Column: "CHARGEID", Property: "chargeId", Kind: KindInt},
			{Column: "PATIENTID", Property: "patientId", Kind: KindString},
			{Column: "TYPE", Property: "type", Kind: KindString},
			{Column: "AMOUNT", Property: "amount", Kind: KindFloat},
			{Column: "METHOD", Property: "method", Kind: KindString},
			{Column: "FROMDATE", Property: "fromDate", Kind: KindString},
			{Column: "TODATE", Property: "toDate", Kind: KindString},
			{Column: "PLACEOFSERVICE", Property: "placeOfService", Kind: KindString},
			{Column: "PROCEDURECODE", Property: "procedureCode", Kind: KindString},
			{Column: "MODIFIER1", Property: "modifier1", Kind: KindString},
			{Column: "MODIFIER2", Property: "modifier2", Kind: KindString},
			{Column: "DIAGNOSISREF1", Property: "diagnosisRef1", Kind: KindInt},
			{Column: "DIAGNOSISREF2", Property: "diagnosisRef2", Kind: KindInt},
			{Column: "DIAGNOSISREF3", Property: "diagnosisRef3", Kind: KindInt},
			{Column: "DIAGNOSISREF4", Property: "diagnosisRef4", Kind: KindInt},
			{Column: "UNITS", Property: "units", Kind: KindInt},
			{Column: "DEPARTMENTID", Property: "departmentId", Kind: KindInt},
			{Column: "NOTES", Property: "notes", Kind: KindString},
			{Column: "UNITAMOUNT", Property: "unitAmount", Kind: KindFloat},
			{Column: "TRANSFEROUTID", Property: "transferOutId", Kind: KindInt},
			{Column: "TRANSFERTYPE", Property: "transferType", Kind: KindString},
			{Column: "PAYMENTS", Property: "payments", Kind: KindFloat},
			{Column: "ADJUSTMENTS", Property: "adjustments", Kind: KindFloat},
			{Column: "TRANSFERS", Property: "transfers", Kind: KindFloat},
			{Column: "OUTSTANDING", Property: "outstanding", Kind: KindFloat},
			{Column: "APPOINTMENTID", Property: "appointmentId", Kind: KindString},
			{Column: "LINENOTE", Property: "lineNote", Kind: KindString},
			{Column: "PATIENTINSURANCEID", Property: "patientInsuranceId", Kind: KindString},
			{Column: "FEEscheduleid", Property: "feeScheduleId", Kind: KindInt},
			{Column: "PROVIDERID", Property: "providerId", Kind: KindString},
			{Column: "SUPERVISINGPROVIDERID", Property: "supervisingProviderId", Kind: KindString},
		},
	},
}

// Indexes lists the secondary indexes created before any data loads.
var Indexes = []Index{
	{Label: "Patient", Property: "ssn"},
	{Label: "Encounter", Property: "start"},
	{Label: "Condition", Property: "code"},
	{Label: "Medication", Property: "code"},
	{Label: "Procedure", Property: "code"},
}

// Rules lists every foreign-key resolution pass. Rules are grouped by owner
// so that each group runs immediately after its owner's node pass; within a
// group order matters only for log readability.
//
// Same-pair rules with different semantics (a claim's primary vs. secondary
// insurer) are distinct entries evaluated independently.
var Rules = []Rule{
	// Provider
	{Owner: "Provider", ForeignKey: "organizationId", Target: "Organization", TargetProperty: "id", Type: "EMPLOYED_BY", Direction: DirectionOut},

	// Encounter
	{Owner: "Encounter", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "HAD_ENCOUNTER", Direction: DirectionIn},
	{Owner: "Encounter", ForeignKey: "organizationId", Target: "Organization", TargetProperty: "id", Type: "OCCURRED_AT", Direction: DirectionOut},
	{Owner: "Encounter", ForeignKey: "providerId", Target: "Provider", TargetProperty: "id", Type: "ATTENDED_BY", Direction: DirectionOut},
	{Owner: "Encounter", ForeignKey: "payerId", Target: "Payer", TargetProperty: "id", Type: "COVERED_BY", Direction: DirectionOut},

	// Condition
	{Owner: "Condition", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "HAS_CONDITION", Direction: DirectionIn},
	{Owner: "Condition", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "DIAGNOSED", Direction: DirectionIn},

	// Medication
	{Owner: "Medication", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "PRESCRIBED", Direction: DirectionIn},
	{Owner: "Medication", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "PRESCRIBED_MEDICATION", Direction: DirectionIn},
	{Owner: "Medication", ForeignKey: "payerId", Target: "Payer", TargetProperty: "id", Type: "PAID_BY", Direction: DirectionOut, RequireKey: true},

	// Procedure
	{Owner: "Procedure", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "UNDERWENT_PROCEDURE", Direction: DirectionIn},
	{Owner: "Procedure", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "PERFORMED_PROCEDURE", Direction: DirectionIn},

	// Immunization
	{Owner: "Immunization", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "RECEIVED_IMMUNIZATION", Direction: DirectionIn},
	{Owner: "Immunization", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "ADMINISTERED_IMMUNIZATION", Direction: DirectionIn},

	// Observation
	{Owner: "Observation", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "HAS_OBSERVATION", Direction: DirectionIn},
	{Owner: "Observation", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "RECORDED_OBSERVATION", Direction: DirectionIn},

	// Allergy
	{Owner: "Allergy", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "HAS_ALLERGY", Direction: DirectionIn},
	{Owner: "Allergy", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "DOCUMENTED_ALLERGY", Direction: DirectionIn},

	// CarePlan
	{Owner: "CarePlan", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "HAS_CAREPLAN", Direction: DirectionIn},
	{Owner: "CarePlan", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "INITIATED_CAREPLAN", Direction: DirectionIn},

	// Device
	{Owner: "Device", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "USES_DEVICE", Direction: DirectionIn},
	{Owner: "Device", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "ASSOCIATED_DEVICE", Direction: DirectionIn},

	// ImagingStudy
	{Owner: "ImagingStudy", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "HAD_IMAGING", Direction: DirectionIn},
	{Owner: "ImagingStudy", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "CONDUCTED_IMAGING", Direction: DirectionIn},

	// Supply
	{Owner: "Supply", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "USED_SUPPLY", Direction: DirectionIn},
	{Owner: "Supply", ForeignKey: "encounterId", Target: "Encounter", TargetProperty: "id", Type: "CONSUMED_SUPPLY", Direction: DirectionIn},

	// PayerTransition
	{Owner: "PayerTransition", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "HAD_COVERAGE", Direction: DirectionIn},
	{Owner: "PayerTransition", ForeignKey: "payerId", Target: "Payer", TargetProperty: "id", Type: "PRIMARY_PAYER", Direction: DirectionOut},
	{Owner: "PayerTransition", ForeignKey: "secondaryPayerId", Target: "Payer", TargetProperty: "id", Type: "SECONDARY_PAYER", Direction: DirectionOut, RequireKey: true},

	// Claim
	{Owner: "Claim", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "FILED_CLAIM", Direction: DirectionIn},
	{Owner: "Claim", ForeignKey: "providerId", Target: "Provider", TargetProperty: "id", Type: "SUBMITTED_BY", Direction: DirectionOut},
	{Owner: "Claim", ForeignKey: "primaryInsuranceId", Target: "Payer", TargetProperty: "id", Type: "PRIMARY_INSURANCE", Direction: DirectionOut, RequireKey: true},
	{Owner: "Claim", ForeignKey: "secondaryInsuranceId", Target: "Payer", TargetProperty: "id", Type: "SECONDARY_INSURANCE", Direction: DirectionOut, RequireKey: true},
	{Owner: "Claim", ForeignKey: "appointmentId", Target: "Encounter", TargetProperty: "id", Type: "FOR_ENCOUNTER", Direction: DirectionOut, RequireKey: true},

	// ClaimTransaction
	{Owner: "ClaimTransaction", ForeignKey: "claimId", Target: "Claim", TargetProperty: "id", Type: "HAS_TRANSACTION", Direction: DirectionIn},
	{Owner: "ClaimTransaction", ForeignKey: "patientId", Target: "Patient", TargetProperty: "id", Type: "FOR_PATIENT", Direction: DirectionOut},
	{Owner: "ClaimTransaction", ForeignKey: "placeOfService", Target: "Organization", TargetProperty: "id", Type: "SERVICE_AT", Direction: DirectionOut, RequireKey: true},
	{Owner: "ClaimTransaction", ForeignKey: "providerId", Target: "Provider", TargetProperty: "id", Type: "PERFORMED_BY", Direction: DirectionOut, RequireKey: true},
	{Owner: "ClaimTransaction", ForeignKey: "appointmentId", Target: "Encounter", TargetProperty: "id", Type: "DURING_ENCOUNTER", Direction: DirectionOut, RequireKey: true},
}

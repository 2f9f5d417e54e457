// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks CompanyRepositoryIface
//go:generate mockgen -source=./provider.go -destination=../mocks/mock_provider_repository.go -package=mocks ProviderRepositoryIface
//go:generate mockgen -source=./affiliation.go -destination=../mocks/mock_affiliation_repository.go -package=mocks AffiliationRepositoryIface
//go:generate mockgen -source=./document.go -destination=../mocks/mock_document_repository.go -package=mocks DocumentRepositoryIface
//go:generate mockgen -source=./license.go -destination=../mocks/mock_license_repository.go -package=mocks LicenseRepositoryIface
//go:generate mockgen -source=./admin_action_log.go -destination=../mocks/mock_admin_action_log_repository.go -package=mocks AdminActionLogRepositoryIface

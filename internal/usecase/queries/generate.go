package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries_mock.go -package=queriesmock salon-booking/internal/usecase/queries AppointmentQueries,CatalogQueries,GalleryQueries

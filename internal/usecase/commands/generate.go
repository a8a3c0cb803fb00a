package commands

//go:generate mockgen -destination=../../../tests/mock/commands/commands_mock.go -package=commandsmock salon-booking/internal/usecase/commands AppointmentCommands,CatalogCommands,GalleryCommands,ReminderCommands,MessageSender,UploadStorage

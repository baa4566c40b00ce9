package services

// Callback data prefixes and values for inline buttons
const (
	cbStartCase      = "start_case"
	cbFingerprintYes = "fp_yes:"
	cbFingerprintNo  = "fp_no:"
	cbDeletePhoto    = "del:"
	cbFinish         = "finish_collection"
	cbConfirmFinish  = "confirm_finish"
	cbAbortFinish    = "abort_finish"
	cbCancel         = "cancel_collection"
	cbConfirmCancel  = "confirm_cancel"
	cbAbortCancel    = "abort_cancel"
)

// User-facing messages. Kept together so the conversational surface is easy
// to review and translate.
const (
	msgWelcome            = "Welcome. Start a new case whenever you are ready."
	msgReadyForNext       = "Ready for the next case when you are."
	msgSendReport         = "Please send the occurrence report PDF, or /cancel to go back."
	msgInvalidReport      = "❌ That doesn't look like a valid occurrence report. Please send the PDF, or /cancel."
	msgCaseStarted        = "✅ Case opened. Send evidence: text notes, photos, voice notes, or your location. Use /finish when done."
	msgLostCaseContext    = "Error: Lost active case context. Returning to main menu."
	msgBackToMenu         = "Returning to main menu."
	msgTransientFailure   = "❌ Network connection issue. Please check your connection and try again."
	msgUnexpectedError    = "❌ An error occurred. Please try again."
	msgTextSaved          = "✅ Text note added."
	msgVoiceSaved         = "✅ Voice note transcribed and added."
	msgLocationSaved      = "✅ Location added."
	msgUnsupported        = "❌ Sorry, I can't process this type of message as evidence. Please send text, photos, voice messages, or location."
	msgFingerprints       = "🖐 Are these photos of fingerprints?"
	msgFingerprintsYes    = "✅ Photos marked as fingerprints. No further descriptions needed."
	msgFingerprintsNo     = "Please provide a description for each photo. You can send text or voice messages."
	msgDescriptionSaved   = "✅ Description saved."
	msgDescriptionNotNow  = "❌ Please provide a text or voice description for the photo, not another photo."
	msgAllDescribed       = "✅ All photo descriptions collected. Processing..."
	msgPhotoDeleted       = "✅ Photo deleted."
	msgBatchEmptied       = "No more photos remaining in this batch."
	msgConfirmFinishAsk   = "⚠️ Finish evidence collection? You won't be able to add more evidence to this case."
	msgFinishAborted      = "✅ Finish aborted. You can continue collecting evidence."
	msgConfirmCancelAsk   = "⚠️ Are you sure? This will discard all evidence you've collected so far."
	msgCancelAborted      = "✅ Cancellation aborted. Your evidence collection continues."
	msgCollectionDone     = "✅ Evidence collection complete. Your evidence has been saved."
	msgCollectionCanceled = "❌ Evidence collection canceled. Your case has been discarded."
)

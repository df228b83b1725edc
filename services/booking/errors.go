package booking

import bookingRepo "vetbuddy/database/repository/booking"

// ErrSlotTaken reports that another active booking won the slot.
var ErrSlotTaken = bookingRepo.ErrSlotTaken

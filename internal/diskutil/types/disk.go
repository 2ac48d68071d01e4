package types

// DiskInfo mirrors the output format of the command "diskutil info -plist <disk>". Only the keys mlsblk displays or
// logs are kept; diskutil emits many more.
type DiskInfo struct {
	APFSContainerReference string              `plist:"APFSContainerReference"`
	APFSPhysicalStores     []APFSPhysicalStore `plist:"APFSPhysicalStores"`
	BusProtocol            string              `plist:"BusProtocol"`
	Content                string              `plist:"Content"`
	DeviceIdentifier       string              `plist:"DeviceIdentifier"`
	DeviceNode             string              `plist:"DeviceNode"`
	DiskUUID               string              `plist:"DiskUUID"`
	FilesystemName         string              `plist:"FilesystemName"`
	FilesystemType         string              `plist:"FilesystemType"`
	Internal               bool                `plist:"Internal"`
	MediaName              string              `plist:"MediaName"`
	MountPoint             string              `plist:"MountPoint"`
	ParentWholeDisk        string              `plist:"ParentWholeDisk"`
	Size                   uint64              `plist:"Size"`
	VirtualOrPhysical      string              `plist:"VirtualOrPhysical"`
	VolumeName             string              `plist:"VolumeName"`
	VolumeUUID             string              `plist:"VolumeUUID"`
	WholeDisk              bool                `plist:"WholeDisk"`
}

// APFSPhysicalStore represents the physical device usually relating to synthesized virtual devices.
type APFSPhysicalStore struct {
	DeviceIdentifier string `plist:"APFSPhysicalStore"`
}

// Label returns the volume name, falling back to the media name for devices without a volume.
func (d *DiskInfo) Label() string {
	if d.VolumeName != "" {
		return d.VolumeName
	}
	return d.MediaName
}

// UUID returns the volume UUID, falling back to the disk (partition) UUID.
func (d *DiskInfo) UUID() string {
	if d.VolumeUUID != "" {
		return d.VolumeUUID
	}
	return d.DiskUUID
}

